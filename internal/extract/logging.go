package extract

import (
	"context"
	"time"

	"github.com/dmejia/credeval/internal/logger"
	"github.com/dmejia/credeval/internal/store"
)

// AuditProvider is a decorator that records every extraction request in
// the audit trail.
type AuditProvider struct {
	inner Provider
	audit store.AuditRepo
	log   logger.Logger
}

// WithAudit wraps a Provider with audit recording. A nil log disables
// diagnostics; the audit repo is required.
func WithAudit(p Provider, audit store.AuditRepo, log logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &AuditProvider{inner: p, audit: audit, log: log}
}

func (a *AuditProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := a.inner.Generate(ctx, req)

	data := store.ExtractionEventData{
		Provider:  a.inner.ModelID(),
		Model:     a.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens

		if c := LookupCost(resp.Model); c != nil {
			a.log.Debug("extraction request",
				"model", resp.Model,
				"latency_ms", data.LatencyMs,
				"est_cost_usd", c.Cost(data.InputTokens, data.OutputTokens))
		}
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Record the event but never fail the extraction over it.
	if auditErr := a.audit.AppendExtraction(ctx, data); auditErr != nil {
		a.log.Warn("failed to append extraction audit event", "err", auditErr)
	}

	return resp, err
}

func (a *AuditProvider) ModelID() string {
	return a.inner.ModelID()
}
