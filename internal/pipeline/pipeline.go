package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"textsum/internal/stats"
	"textsum/internal/summarizer"
)

// TokenLimiter truncates text to a model's input window.
type TokenLimiter interface {
	Truncate(text string, maxTokens int) (string, bool)
}

// Result pairs an input text with its generated summary and statistics.
type Result struct {
	Original  string
	Summary   string
	Stats     stats.Stats
	Truncated bool
}

// Pipeline runs the single validate, truncate, summarize, measure sequence.
type Pipeline struct {
	summarizer     summarizer.Summarizer
	limiter        TokenLimiter
	maxInputTokens int
	log            *slog.Logger
}

// New builds a pipeline. limiter may be nil, in which case input is passed to
// the summarizer untruncated.
func New(
	s summarizer.Summarizer,
	limiter TokenLimiter,
	maxInputTokens int,
	log *slog.Logger,
) *Pipeline {
	return &Pipeline{
		summarizer:     s,
		limiter:        limiter,
		maxInputTokens: maxInputTokens,
		log:            log,
	}
}

// Run summarizes text and returns the pair with its statistics. Statistics
// are computed against the full trimmed input even when the text sent to the
// model was truncated.
func (p *Pipeline) Run(ctx context.Context, text string) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, summarizer.ErrEmptyInput
	}

	inferText := text
	truncated := false
	if p.limiter != nil {
		inferText, truncated = p.limiter.Truncate(text, p.maxInputTokens)
		if truncated {
			p.log.WarnContext(ctx, "Input exceeds model window so it was truncated",
				"maxInputTokens", p.maxInputTokens)
		}
	}

	summary, err := p.summarizer.Summarize(ctx, summarizer.Input{Text: inferText})
	if err != nil {
		if errors.Is(err, summarizer.ErrEmptyInput) ||
			errors.Is(err, summarizer.ErrModelUnavailable) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %v", summarizer.ErrModelUnavailable, err)
	}

	return &Result{
		Original:  text,
		Summary:   summary,
		Stats:     stats.Compute(text, summary),
		Truncated: truncated,
	}, nil
}
