// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dmejia/credeval/ent/evaluationevent"
	"github.com/dmejia/credeval/ent/extractionevent"
	"github.com/dmejia/credeval/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescCourseCount is the schema descriptor for course_count field.
	evaluationeventDescCourseCount := evaluationeventFields[4].Descriptor()
	// evaluationevent.DefaultCourseCount holds the default value on creation for the course_count field.
	evaluationevent.DefaultCourseCount = evaluationeventDescCourseCount.Default.(int)
	// evaluationeventDescAcceptedCount is the schema descriptor for accepted_count field.
	evaluationeventDescAcceptedCount := evaluationeventFields[5].Descriptor()
	// evaluationevent.DefaultAcceptedCount holds the default value on creation for the accepted_count field.
	evaluationevent.DefaultAcceptedCount = evaluationeventDescAcceptedCount.Default.(int)
	// evaluationeventDescRejectedCount is the schema descriptor for rejected_count field.
	evaluationeventDescRejectedCount := evaluationeventFields[6].Descriptor()
	// evaluationevent.DefaultRejectedCount holds the default value on creation for the rejected_count field.
	evaluationevent.DefaultRejectedCount = evaluationeventDescRejectedCount.Default.(int)
	// evaluationeventDescTotalCredits is the schema descriptor for total_credits field.
	evaluationeventDescTotalCredits := evaluationeventFields[7].Descriptor()
	// evaluationevent.DefaultTotalCredits holds the default value on creation for the total_credits field.
	evaluationevent.DefaultTotalCredits = evaluationeventDescTotalCredits.Default.(string)
	// evaluationeventDescWarningCount is the schema descriptor for warning_count field.
	evaluationeventDescWarningCount := evaluationeventFields[8].Descriptor()
	// evaluationevent.DefaultWarningCount holds the default value on creation for the warning_count field.
	evaluationevent.DefaultWarningCount = evaluationeventDescWarningCount.Default.(int)
	// evaluationeventDescDurationMs is the schema descriptor for duration_ms field.
	evaluationeventDescDurationMs := evaluationeventFields[9].Descriptor()
	// evaluationevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	evaluationevent.DefaultDurationMs = evaluationeventDescDurationMs.Default.(int64)
	extractioneventMixin := schema.ExtractionEvent{}.Mixin()
	extractioneventMixinFields0 := extractioneventMixin[0].Fields()
	_ = extractioneventMixinFields0
	extractioneventFields := schema.ExtractionEvent{}.Fields()
	_ = extractioneventFields
	// extractioneventDescTimestamp is the schema descriptor for timestamp field.
	extractioneventDescTimestamp := extractioneventMixinFields0[1].Descriptor()
	// extractionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	extractionevent.DefaultTimestamp = extractioneventDescTimestamp.Default.(func() time.Time)
	// extractioneventDescInputTokens is the schema descriptor for input_tokens field.
	extractioneventDescInputTokens := extractioneventFields[2].Descriptor()
	// extractionevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	extractionevent.DefaultInputTokens = extractioneventDescInputTokens.Default.(int)
	// extractioneventDescOutputTokens is the schema descriptor for output_tokens field.
	extractioneventDescOutputTokens := extractioneventFields[3].Descriptor()
	// extractionevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	extractionevent.DefaultOutputTokens = extractioneventDescOutputTokens.Default.(int)
	// extractioneventDescLatencyMs is the schema descriptor for latency_ms field.
	extractioneventDescLatencyMs := extractioneventFields[4].Descriptor()
	// extractionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	extractionevent.DefaultLatencyMs = extractioneventDescLatencyMs.Default.(int64)
	// extractioneventDescErrorMessage is the schema descriptor for error_message field.
	extractioneventDescErrorMessage := extractioneventFields[6].Descriptor()
	// extractionevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	extractionevent.DefaultErrorMessage = extractioneventDescErrorMessage.Default.(string)
}
