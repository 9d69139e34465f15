package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmejia/credeval/internal/logger"
	"github.com/dmejia/credeval/internal/policy"
	"github.com/dmejia/credeval/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "credeval",
	Short: "Transfer credit evaluation for community college transcripts",
	Long: "Credeval evaluates transfer credit from extracted academic transcripts: " +
		"it normalizes course records, applies the institution's transfer policy, " +
		"and produces per-course verdicts with an auditable trail.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite audit database (overrides CREDEVAL_DB env var)")
	rootCmd.PersistentFlags().String("policy", "", "Path to a policy JSON file (default: built-in policy)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CREDEVAL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadPolicy returns the policy selected by --policy, or the built-in
// default when the flag is unset.
func loadPolicy(cmd *cobra.Command) (*policy.Policy, error) {
	if p, _ := cmd.Flags().GetString("policy"); p != "" {
		return policy.Load(p)
	}
	return policy.Default(), nil
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger(cmd *cobra.Command) logger.Logger {
	level := "info"
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = "debug"
	}
	return logger.New(logger.Config{Level: level, Output: cmd.ErrOrStderr()})
}
