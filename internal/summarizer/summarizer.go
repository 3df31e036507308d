package summarizer

import (
	"context"
	"errors"
)

var (
	// ErrEmptyInput reports input text that is empty after trimming.
	ErrEmptyInput = errors.New("input is empty")

	// ErrModelUnavailable reports that the summarization model could not be
	// loaded or invoked.
	ErrModelUnavailable = errors.New("summarization model unavailable")
)

// Options bound the generated summary's length in model tokens.
type Options struct {
	MaxSummaryTokens int64
	MinSummaryTokens int64
}

// Input describes the payload for a summary request.
type Input struct {
	// Text contains the original plain text to summarize.
	Text string
	// Source is optional metadata describing where the text came from.
	Source string
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}
