// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EvaluationEvent is the predicate function for evaluationevent builders.
type EvaluationEvent func(*sql.Selector)

// ExtractionEvent is the predicate function for extractionevent builders.
type ExtractionEvent func(*sql.Selector)
