package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: " \t\n ", want: 0},
		{name: "single word", text: "hello", want: 1},
		{name: "multiple words", text: "one two three four", want: 4},
		{name: "mixed whitespace", text: "one\ttwo\nthree  four", want: 4},
		{name: "leading and trailing spaces", text: "  one two  ", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.text))
		})
	}
}

func TestCompute(t *testing.T) {
	st := Compute("one two three four", "short summary")

	assert.Equal(t, 4, st.OriginalWords)
	assert.Equal(t, 2, st.SummaryWords)
}

func TestCompressionPct(t *testing.T) {
	tests := []struct {
		name     string
		original int
		summary  int
		want     string
	}{
		{name: "quarter kept", original: 100, summary: 25, want: "75.00"},
		{name: "half kept", original: 4, summary: 2, want: "50.00"},
		{name: "everything kept", original: 10, summary: 10, want: "0.00"},
		{name: "summary longer than original", original: 2, summary: 4, want: "-100.00"},
		{name: "two decimal rounding", original: 3, summary: 1, want: "66.67"},
		{name: "zero original", original: 0, summary: 5, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Stats{OriginalWords: tt.original, SummaryWords: tt.summary}
			assert.Equal(t, tt.want, fmt.Sprintf("%.2f", st.CompressionPct()))
		})
	}
}
