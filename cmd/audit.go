package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmejia/credeval/internal/store"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the evaluation audit trail",
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent evaluation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		institution, _ := cmd.Flags().GetString("institution")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.AuditRepo().Evaluations(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query evaluations: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No evaluation runs recorded.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-30s  %-8s  %-7s  %-7s  %-8s  %s\n",
			"Seq", "Timestamp", "Institution", "Policy", "Accept", "Reject", "Credits", "Run")
		fmt.Fprintln(out, strings.Repeat("─", 110))

		for _, r := range records {
			if institution != "" && r.Institution != institution {
				continue
			}
			inst := r.Institution
			if len(inst) > 30 {
				inst = inst[:30]
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-30s  %-8s  %-7d  %-7d  %-8s  %s\n",
				r.Sequence,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				inst,
				r.PolicyVersion,
				r.AcceptedCount,
				r.RejectedCount,
				r.TotalCredits,
				r.RunID,
			)
		}
		return nil
	},
}

func init() {
	auditListCmd.Flags().Int("limit", 20, "Maximum number of runs to show")
	auditListCmd.Flags().String("institution", "", "Filter by sending institution")
	auditCmd.AddCommand(auditListCmd)
}
