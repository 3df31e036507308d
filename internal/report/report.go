package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"textsum/internal/stats"
)

const wrapWidth = 90

// Default paths for saved results.
const (
	TextOutputPath     = "summary_output.txt"
	MarkdownOutputPath = "README_SUMMARY.md"
)

// Render writes the original text, the generated summary, and the statistics
// block to w, each section titled and word-wrapped. It is a pure function of
// its inputs.
func Render(w io.Writer, original, summary string, st stats.Stats) error {
	var b strings.Builder

	writeSection(&b, "ORIGINAL TEXT", original)
	writeSection(&b, "GENERATED SUMMARY", summary)

	b.WriteString("\nSUMMARY STATISTICS\n")
	b.WriteString(strings.Repeat("-", 22))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Original Length : %d words\n", st.OriginalWords)
	fmt.Fprintf(&b, "Summary Length  : %d words\n", st.SummaryWords)
	fmt.Fprintf(&b, "Compression     : %.2f%%\n", st.CompressionPct())

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, title, content string) {
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(title)))
	b.WriteString("\n")
	b.WriteString(Wrap(content, wrapWidth))
	b.WriteString("\n")
}

// Wrap greedily wraps text at width columns, breaking only on whitespace.
// Words longer than width stay on their own line.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}

	return b.String()
}

// SaveText writes the original and summary as a labeled plain-text file.
func SaveText(path, original, summary string) error {
	var b strings.Builder
	b.WriteString("ORIGINAL TEXT:\n")
	b.WriteString(original)
	b.WriteString("\n\n")
	b.WriteString("SUMMARY:\n")
	b.WriteString(summary)
	b.WriteString("\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// SaveMarkdown writes the summary as a small Markdown document.
func SaveMarkdown(path, summary string) error {
	content := "# Summarized Article\n\n" + summary + "\n"

	return os.WriteFile(path, []byte(content), 0o644)
}
