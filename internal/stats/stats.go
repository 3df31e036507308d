package stats

import "strings"

// Stats holds the word-count comparison between a text and its summary.
type Stats struct {
	OriginalWords int
	SummaryWords  int
}

// WordCount counts whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Compute derives word-count statistics for an original text and its summary.
func Compute(original, summary string) Stats {
	return Stats{
		OriginalWords: WordCount(original),
		SummaryWords:  WordCount(summary),
	}
}

// CompressionPct reports how much shorter the summary is than the original,
// as a percentage of the original's word count. A summary longer than the
// original yields a negative value.
func (s Stats) CompressionPct() float64 {
	if s.OriginalWords == 0 {
		return 0
	}

	return 100 * (1 - float64(s.SummaryWords)/float64(s.OriginalWords))
}
