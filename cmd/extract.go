package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmejia/credeval/internal/extract"
	"github.com/dmejia/credeval/internal/store"
)

var extractCmd = &cobra.Command{
	Use:   "extract <transcript.txt>",
	Short: "Extract structured course data from transcript text",
	Long: "Extract runs the configured model over transcript text (use \"-\" for stdin) " +
		"and prints the structured transcript as JSON. The output feeds directly into " +
		"\"credeval evaluate\".",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		text, err := readTextArg(cmd, args[0])
		if err != nil {
			return err
		}

		cfg := extract.ConfigFromEnv()
		if p, _ := cmd.Flags().GetString("provider"); p != "" {
			cfg.Provider = p
		}
		if err := cfg.Validate(); err != nil {
			if discovered, ok := extract.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				return err
			}
		}

		noAudit, _ := cmd.Flags().GetBool("no-audit")
		var audit store.AuditRepo = store.NopAuditRepo{}
		if !noAudit {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			s, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer s.Close()
			audit = s.AuditRepo()
		}

		provider, err := extract.NewProvider(cmd.Context(), cfg, audit, log)
		if err != nil {
			return fmt.Errorf("build extraction provider: %w", err)
		}

		ex := extract.NewExtractor(provider, cfg, log)
		raw, signals, err := ex.Transcript(cmd.Context(), text)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(transcriptFile{Transcript: raw, Signals: signals})
	},
}

func init() {
	extractCmd.Flags().String("provider", "", "Extraction provider: anthropic, openai, gemini, mock")
	extractCmd.Flags().Bool("no-audit", false, "Skip recording the extraction in the audit trail")
}

func readTextArg(cmd *cobra.Command, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read transcript text: %w", err)
	}
	return string(data), nil
}
