package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmejia/credeval/internal/confidence"
	"github.com/dmejia/credeval/internal/logger"
	"github.com/dmejia/credeval/internal/transcript"
)

const extractSystemPrompt = `You are a registrar's assistant extracting course data from academic transcripts.
Extract every course exactly as printed. Do not correct, normalize, or infer values:
if a grade reads "Pass*", return "Pass*". Report a confidence between 0 and 1 for each
extracted field based on how clearly it was printed. Use an empty string for fields
that are absent from the document.`

// Extractor turns transcript text into structured course data using a
// schema-constrained model call.
type Extractor struct {
	provider  Provider
	maxTokens int
	log       logger.Logger
}

// NewExtractor builds an Extractor on the given provider.
func NewExtractor(p Provider, cfg Config, log logger.Logger) *Extractor {
	if log == nil {
		log = logger.Nop()
	}
	return &Extractor{provider: p, maxTokens: cfg.MaxTokens, log: log}
}

// extractedTranscript is the wire form the model returns. It mirrors the
// transcript schema, with per-course confidence hints that the evaluator
// consumes as signals.
type extractedTranscript struct {
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Institution struct {
		Name         string `json:"name"`
		Location     string `json:"location"`
		CreditSystem string `json:"credit_system"`
	} `json:"institution"`
	Courses []struct {
		Code            string             `json:"course_code"`
		Name            string             `json:"course_name"`
		Credits         string             `json:"credits"`
		Grade           string             `json:"grade"`
		Term            string             `json:"term"`
		Year            string             `json:"year"`
		FieldConfidence map[string]float64 `json:"field_confidence"`
	} `json:"courses"`
	StatedTotalCredits string `json:"stated_total_credits"`
}

// Transcript extracts structured course data from transcript text.
// It returns the raw transcript plus per-course field signals keyed by
// course position.
func (e *Extractor) Transcript(ctx context.Context, text string) (*transcript.RawTranscript, map[int]map[string]confidence.Signals, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, fmt.Errorf("empty transcript text")
	}

	resp, err := e.provider.Generate(ctx, Request{
		System:    extractSystemPrompt,
		Messages:  []Message{{Role: RoleUser, Content: text}},
		Schema:    TranscriptSchema(),
		MaxTokens: e.maxTokens,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("extract transcript: %w", err)
	}

	var parsed extractedTranscript
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	raw := &transcript.RawTranscript{
		StudentName: parsed.StudentName,
		StudentID:   parsed.StudentID,
		Institution: transcript.RawInstitution{
			Name:         parsed.Institution.Name,
			Location:     parsed.Institution.Location,
			CreditSystem: parsed.Institution.CreditSystem,
		},
		StatedTotalCredits: parsed.StatedTotalCredits,
	}

	signals := make(map[int]map[string]confidence.Signals)
	for i, c := range parsed.Courses {
		raw.Courses = append(raw.Courses, transcript.RawCourse{
			Code:    c.Code,
			Name:    c.Name,
			Credits: c.Credits,
			Grade:   c.Grade,
			Term:    c.Term,
			Year:    c.Year,
		})
		if len(c.FieldConfidence) > 0 {
			signals[i] = courseSignals(c.FieldConfidence)
		}
	}

	e.log.Info("extracted transcript",
		"institution", raw.Institution.Name,
		"courses", len(raw.Courses),
		"model", resp.Model)

	return raw, signals, nil
}

// courseSignals converts model confidence hints into scorer signals.
// Hints outside [0, 1] are dropped rather than clamped.
func courseSignals(hints map[string]float64) map[string]confidence.Signals {
	out := make(map[string]confidence.Signals, len(hints))
	for field, hint := range hints {
		sig := confidence.NoSignals()
		sig.Method = "llm"
		if hint >= 0 && hint <= 1 {
			sig.ModelConfidence = hint
		}
		out[field] = sig
	}
	return out
}
