package normalize

import "fmt"

// Kind classifies which field a normalization failure is tied to.
type Kind string

const (
	KindCode   Kind = "code"
	KindGrade  Kind = "grade"
	KindCredit Kind = "credit"
	KindTerm   Kind = "term"
	KindSystem Kind = "system"
)

// FieldError is a validation failure on a single course field. It is always
// tied to one course and never aborts the batch: the evaluator converts it
// into a rejected verdict and moves on.
type FieldError struct {
	Kind  Kind
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %q is invalid", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(kind Kind, field, value, format string, args ...any) *FieldError {
	return &FieldError{
		Kind:  kind,
		Field: field,
		Value: value,
		Err:   fmt.Errorf(format, args...),
	}
}
