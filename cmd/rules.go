package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active transfer policy rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPolicy(cmd)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid policy: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Policy %s\n\n", p.Version)
		fmt.Fprintf(out, "%-24s  %-10s  %-12s  %s\n", "ID", "Priority", "Type", "Name")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, r := range p.Rules() {
			fmt.Fprintf(out, "%-24s  %-10s  %-12s  %s\n",
				r.ID, r.Priority.DisplayName(), r.Type, r.Name)
		}
		return nil
	},
}
