package llm

import "context"

// Purpose labels what a request was for; it is stored with each request
// event and drives the per-purpose usage report.
type Purpose string

const (
	PurposeCardGen     Purpose = "card-gen"
	PurposeQuestionGen Purpose = "question-gen"
	PurposeQuery       Purpose = "query"
	PurposeUnknown     Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx with p.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the tag set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
