package policy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a policy file (JSON) and validates it. Fields absent from the
// file keep their built-in defaults. Any failure is fatal: a partially
// loaded policy never reaches the evaluator.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	p := Default()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse policy file %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("policy file %s: %w", path, err)
	}
	return p, nil
}
