package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmejia/credeval/internal/evaluate"
	"github.com/dmejia/credeval/internal/report"
	"github.com/dmejia/credeval/internal/store"
	"github.com/dmejia/credeval/internal/transcript"
)

// transcriptFile is the on-disk form shared by the extract and evaluate
// commands: the raw transcript plus optional extraction signals.
type transcriptFile struct {
	Transcript *transcript.RawTranscript `json:"transcript"`
	Signals    evaluate.Signals          `json:"signals,omitempty"`
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <transcript.json>",
	Short: "Evaluate transfer credit for an extracted transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")
		showConfidence, _ := cmd.Flags().GetBool("show-confidence")
		noAudit, _ := cmd.Flags().GetBool("no-audit")

		log := newLogger(cmd)

		raw, signals, err := readTranscriptFile(args[0])
		if err != nil {
			return err
		}

		p, err := loadPolicy(cmd)
		if err != nil {
			return fmt.Errorf("load policy: %w", err)
		}

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

		ev, err := evaluate.New(p, evaluate.Options{Audit: audit, Log: log})
		if err != nil {
			return fmt.Errorf("build evaluator: %w", err)
		}

		res, err := ev.EvaluateTranscript(cmd.Context(), raw, signals)
		if err != nil {
			return err
		}

		if jsonOut {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Fprint(cmd.OutOrStdout(), report.Render(res, report.Options{
			ShowConfidence: showConfidence,
		}))
		return nil
	},
}

func init() {
	evaluateCmd.Flags().Bool("json", false, "Emit the full evaluation as JSON")
	evaluateCmd.Flags().Bool("show-confidence", false, "Include extraction confidence annotations in the report")
	evaluateCmd.Flags().Bool("no-audit", false, "Skip writing an audit record for this run")
}

// readTranscriptFile loads a transcript JSON file. Both the extract
// command's output (transcript plus signals) and a bare raw transcript
// are accepted.
func readTranscriptFile(path string) (*transcript.RawTranscript, evaluate.Signals, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read transcript: %w", err)
	}

	var file transcriptFile
	if err := json.Unmarshal(data, &file); err == nil && file.Transcript != nil {
		return file.Transcript, file.Signals, nil
	}

	var raw transcript.RawTranscript
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	return &raw, nil, nil
}
