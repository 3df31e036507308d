package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"textsum/internal/summarizer"
)

type stubSummarizer struct {
	mu        sync.Mutex
	calls     int
	lastInput string
	summary   string
	err       error
}

func (s *stubSummarizer) Summarize(
	_ context.Context,
	input summarizer.Input,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastInput = input.Text

	return s.summary, s.err
}

func (s *stubSummarizer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

func (s *stubSummarizer) lastReceived() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastInput
}

type prefixLimiter struct{}

func (prefixLimiter) Truncate(text string, maxTokens int) (string, bool) {
	words := strings.Fields(text)
	if len(words) <= maxTokens {
		return text, false
	}

	return strings.Join(words[:maxTokens], " "), true
}

func TestPipelineRejectsEmptyInput(t *testing.T) {
	stub := &stubSummarizer{summary: "should not be produced"}
	pipe := New(stub, nil, 0, slog.Default())

	_, err := pipe.Run(context.Background(), "   \n\t ")
	if !errors.Is(err, summarizer.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	if got := stub.callCount(); got != 0 {
		t.Fatalf("expected summarizer to stay untouched, got %d calls", got)
	}
}

func TestPipelineComputesStats(t *testing.T) {
	stub := &stubSummarizer{summary: "short summary"}
	pipe := New(stub, nil, 0, slog.Default())

	result, err := pipe.Run(context.Background(), "one two three four")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Original != "one two three four" {
		t.Fatalf("unexpected original: %q", result.Original)
	}

	if result.Summary != "short summary" {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}

	if result.Stats.OriginalWords != 4 || result.Stats.SummaryWords != 2 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}

	if got := fmt.Sprintf("%.2f", result.Stats.CompressionPct()); got != "50.00" {
		t.Fatalf("unexpected compression: %s", got)
	}

	if result.Truncated {
		t.Fatal("expected result to not be truncated")
	}
}

func TestPipelineSummaryHasWords(t *testing.T) {
	stub := &stubSummarizer{summary: "a condensed version"}
	pipe := New(stub, nil, 0, slog.Default())

	result, err := pipe.Run(context.Background(), "some reasonably long input text here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Stats.SummaryWords < 1 {
		t.Fatalf("expected at least one summary word, got %d", result.Stats.SummaryWords)
	}

	if result.Stats.SummaryWords > result.Stats.OriginalWords {
		t.Fatalf("expected summary no longer than original, got %+v", result.Stats)
	}
}

func TestPipelineWrapsSummarizerFailure(t *testing.T) {
	stub := &stubSummarizer{err: errors.New("connection refused")}
	pipe := New(stub, nil, 0, slog.Default())

	_, err := pipe.Run(context.Background(), "one two three four")
	if !errors.Is(err, summarizer.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}

	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected cause in error, got %v", err)
	}
}

func TestPipelineTruncatesOverLongInput(t *testing.T) {
	stub := &stubSummarizer{summary: "short"}
	pipe := New(stub, prefixLimiter{}, 3, slog.Default())

	full := "one two three four five"
	result, err := pipe.Run(context.Background(), full)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Truncated {
		t.Fatal("expected result to be truncated")
	}

	if got := stub.lastReceived(); got != "one two three" {
		t.Fatalf("expected truncated text sent to summarizer, got %q", got)
	}

	if result.Original != full {
		t.Fatalf("expected full original preserved, got %q", result.Original)
	}

	if result.Stats.OriginalWords != 5 {
		t.Fatalf("expected stats on full input, got %+v", result.Stats)
	}
}

func TestPipelineKeepsInputUntouchedUnderLimit(t *testing.T) {
	stub := &stubSummarizer{summary: "short"}
	pipe := New(stub, prefixLimiter{}, 10, slog.Default())

	result, err := pipe.Run(context.Background(), "one two three")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Truncated {
		t.Fatal("expected no truncation")
	}

	if got := stub.lastReceived(); got != "one two three" {
		t.Fatalf("unexpected text sent to summarizer: %q", got)
	}
}
