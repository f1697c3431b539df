// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/smartanki/smartanki/ent/card"
	"github.com/smartanki/smartanki/ent/category"
	"github.com/smartanki/smartanki/ent/llmrequestevent"
	"github.com/smartanki/smartanki/ent/reviewevent"
	"github.com/smartanki/smartanki/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescFront is the schema descriptor for front field.
	cardDescFront := cardFields[2].Descriptor()
	// card.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	card.FrontValidator = cardDescFront.Validators[0].(func(string) error)
	// cardDescBack is the schema descriptor for back field.
	cardDescBack := cardFields[3].Descriptor()
	// card.DefaultBack holds the default value on creation for the back field.
	card.DefaultBack = cardDescBack.Default.(string)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[5].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescEaseFactor is the schema descriptor for ease_factor field.
	cardDescEaseFactor := cardFields[6].Descriptor()
	// card.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	card.DefaultEaseFactor = cardDescEaseFactor.Default.(float64)
	// cardDescInterval is the schema descriptor for interval field.
	cardDescInterval := cardFields[7].Descriptor()
	// card.DefaultInterval holds the default value on creation for the interval field.
	card.DefaultInterval = cardDescInterval.Default.(int)
	// card.IntervalValidator is a validator for the "interval" field. It is called by the builders before save.
	card.IntervalValidator = cardDescInterval.Validators[0].(func(int) error)
	// cardDescReviewCount is the schema descriptor for review_count field.
	cardDescReviewCount := cardFields[9].Descriptor()
	// card.DefaultReviewCount holds the default value on creation for the review_count field.
	card.DefaultReviewCount = cardDescReviewCount.Default.(int)
	// card.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	card.ReviewCountValidator = cardDescReviewCount.Validators[0].(func(int) error)
	// cardDescLapseCount is the schema descriptor for lapse_count field.
	cardDescLapseCount := cardFields[10].Descriptor()
	// card.DefaultLapseCount holds the default value on creation for the lapse_count field.
	card.DefaultLapseCount = cardDescLapseCount.Default.(int)
	// card.LapseCountValidator is a validator for the "lapse_count" field. It is called by the builders before save.
	card.LapseCountValidator = cardDescLapseCount.Validators[0].(func(int) error)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[0].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescDescription is the schema descriptor for description field.
	categoryDescDescription := categoryFields[1].Descriptor()
	// category.DefaultDescription holds the default value on creation for the description field.
	category.DefaultDescription = categoryDescDescription.Default.(string)
	// categoryDescIsEnabled is the schema descriptor for is_enabled field.
	categoryDescIsEnabled := categoryFields[2].Descriptor()
	// category.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	category.DefaultIsEnabled = categoryDescIsEnabled.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescSequence is the schema descriptor for sequence field.
	llmrequesteventDescSequence := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	llmrequestevent.SequenceValidator = llmrequesteventDescSequence.Validators[0].(func(int64) error)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequestevent.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	llmrequestevent.InputTokensValidator = llmrequesteventDescInputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequestevent.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	llmrequestevent.OutputTokensValidator = llmrequesteventDescOutputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescSequence is the schema descriptor for sequence field.
	revieweventDescSequence := revieweventMixinFields0[0].Descriptor()
	// reviewevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	reviewevent.SequenceValidator = revieweventDescSequence.Validators[0].(func(int64) error)
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescQuality is the schema descriptor for quality field.
	revieweventDescQuality := revieweventFields[1].Descriptor()
	// reviewevent.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	reviewevent.QualityValidator = revieweventDescQuality.Validators[0].(func(int) error)
}
