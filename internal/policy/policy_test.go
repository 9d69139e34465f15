package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmejia/credeval/internal/rules"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_Rules(t *testing.T) {
	p := Default()

	set := p.Rules()
	require.NotEmpty(t, set)
	for _, r := range set {
		assert.NoError(t, r.Validate(), "rule %s", r.ID)
	}

	// Default policy has no equivalencies or program overrides.
	for _, r := range set {
		assert.NotEqual(t, "course-equivalency", r.ID)
		assert.NotEqual(t, "program-overrides", r.ID)
	}

	// The built-in set must build a working engine.
	_, err := rules.New(set, p.EngineConfig())
	require.NoError(t, err)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Policy)
	}{
		{"bad version", func(p *Policy) { p.Version = "1.0" }},
		{"zero cap", func(p *Policy) { p.MaxCredits = decimal.Zero }},
		{"zero level", func(p *Policy) { p.MinCourseLevel = 0 }},
		{"ceiling below max", func(p *Policy) { p.CourseCreditCeiling = decimal.NewFromInt(1) }},
		{"zero ratio", func(p *Policy) { p.QuarterDenominator = 0 }},
		{"no grades", func(p *Policy) { p.ValidGrades = nil }},
		{"zero window", func(p *Policy) { p.TimeWindowYears = 0 }},
		{"threshold out of range", func(p *Policy) { p.ConfidenceThreshold = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestQuarterRatio(t *testing.T) {
	p := Default()
	// 4.5 quarter credits become 3 semester credits.
	got := decimal.RequireFromString("4.5").Mul(p.QuarterRatio()).Round(2)
	assert.True(t, got.Equal(decimal.NewFromInt(3)), "got %s", got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.json")

	content := `{
		"version": "v2.1.0",
		"max_credits": 60,
		"approved_institutions": ["State U"],
		"equivalencies": {"ENG101": "ENG110"},
		"time_warn_only": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "v2.1.0", p.Version)
	assert.True(t, p.MaxCredits.Equal(decimal.NewFromInt(60)))
	// File-absent fields keep defaults.
	assert.Equal(t, 100, p.MinCourseLevel)
	assert.Equal(t, 10, p.TimeWindowYears)
	assert.True(t, p.TimeWarnOnly)
	assert.True(t, p.ApprovedSet()["State U"])

	// The loaded policy contributes an equivalency rule.
	var ids []string
	for _, r := range p.Rules() {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "course-equivalency")
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad json", `{`},
		{"bad version", `{"version": "two"}`},
		{"bad constant", `{"max_credits": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}
