package domain

import "context"

// LLMClient defines how the core application asks an LLM for an enriched
// coach note. Implementations may fail; callers treat any failure as
// "no note" rather than an error of their own.
type LLMClient interface {
	GenerateCoachNote(ctx context.Context, in SubmissionInput) (string, error)
}
