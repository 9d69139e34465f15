package transcript

// Institution is the sending school a transcript came from.
// It is caller-owned input: the engine only reads it.
type Institution struct {
	Name         string       `json:"name"`
	Location     string       `json:"location,omitempty"`
	CreditSystem CreditSystem `json:"credit_system"`
	// Approved is set by the caller when the institution appears on the
	// configured approval list. The institution rule reads it.
	Approved bool `json:"approved,omitempty"`
}

// RawInstitution holds the institution fields as extracted, before the
// credit system tag has been validated.
type RawInstitution struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	CreditSystem string `json:"credit_system"`
}

// RawTranscript is the extraction-service output for one transcript:
// student identity, the sending institution, and every course as raw
// field strings, plus per-field extraction signals.
type RawTranscript struct {
	StudentName string         `json:"student_name"`
	StudentID   string         `json:"student_id"`
	Institution RawInstitution `json:"institution"`
	Courses     []RawCourse    `json:"courses"`
	// StatedTotalCredits is the credit total printed on the transcript,
	// when present. Used only as a cross-field consistency signal.
	StatedTotalCredits string `json:"stated_total_credits,omitempty"`
}
