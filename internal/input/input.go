package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source identifies where input text came from.
type Source string

const (
	SourceInteractive Source = "interactive"
	SourceFile        Source = "file"
)

// Text is raw input together with its origin.
type Text struct {
	Content string
	Source  Source
	// Path is set when Source is SourceFile.
	Path string
}

// ReadInteractive reads lines from r until a blank line or EOF and joins them
// with single spaces. It reads line by line so that r stays usable for later
// prompts.
func ReadInteractive(r *bufio.Reader) (Text, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Text{}, fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)

		if err != nil {
			break
		}
	}

	return Text{
		Content: strings.TrimSpace(strings.Join(lines, " ")),
		Source:  SourceInteractive,
	}, nil
}

// ReadFile reads the whole file at path. A missing file surfaces as an error
// satisfying errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (Text, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Text{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	return Text{
		Content: string(content),
		Source:  SourceFile,
		Path:    path,
	}, nil
}
