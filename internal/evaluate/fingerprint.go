package evaluate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/dmejia/credeval/internal/transcript"
)

// canonicalTranscript is the fingerprint input form. Fields are the
// trimmed raw values in transcript order; anything that does not change
// the verdicts (student identity, extraction metadata) is excluded.
type canonicalTranscript struct {
	Institution  string            `json:"institution"`
	CreditSystem string            `json:"credit_system"`
	Courses      []canonicalCourse `json:"courses"`
	Policy       string            `json:"policy"`
}

type canonicalCourse struct {
	Code    string `json:"code"`
	Credits string `json:"credits"`
	Grade   string `json:"grade"`
	Year    string `json:"year"`
}

// Fingerprint digests a raw transcript together with the policy version.
// Equal fingerprints guarantee equal verdicts, which lets callers reuse a
// prior evaluation instead of re-running the pipeline.
func Fingerprint(raw *transcript.RawTranscript, policyVersion string) string {
	canon := canonicalTranscript{
		Institution:  strings.TrimSpace(raw.Institution.Name),
		CreditSystem: strings.ToLower(strings.TrimSpace(raw.Institution.CreditSystem)),
		Policy:       policyVersion,
		Courses:      make([]canonicalCourse, 0, len(raw.Courses)),
	}
	for _, rc := range raw.Courses {
		canon.Courses = append(canon.Courses, canonicalCourse{
			Code:    strings.ToUpper(strings.TrimSpace(rc.Code)),
			Credits: strings.TrimSpace(rc.Credits),
			Grade:   strings.ToUpper(strings.TrimSpace(rc.Grade)),
			Year:    strings.TrimSpace(rc.Year),
		})
	}

	// Struct field order makes the JSON form canonical.
	b, _ := json.Marshal(canon)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
