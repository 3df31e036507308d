package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"textsum/internal/config"
	"textsum/internal/input"
	"textsum/internal/pipeline"
	"textsum/internal/report"
	"textsum/internal/stats"
	"textsum/internal/summarizer"
	"textsum/internal/tokens"
)

const (
	exitOK           = 0
	exitModelFailure = 1
	exitBadInput     = 2
	exitFileNotFound = 3
)

const bannerWidth = 80

func main() {
	os.Exit(run())
}

func run() int {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(log)

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return exitBadInput
	}

	printBanner(os.Stdout)

	fmt.Println("\nLoading summarizer model...")
	encoder, err := tokens.NewEncoder(cfg.Model)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load tokenizer",
			"error", err,
			"model", cfg.Model)

		return exitModelFailure
	}

	s := summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey, cfg.Model, summarizer.Options{
		MaxSummaryTokens: cfg.MaxSummaryTokens,
		MinSummaryTokens: cfg.MinSummaryTokens,
	})
	pipe := pipeline.New(s, encoder, cfg.MaxInputTokens, log)

	stdin := bufio.NewReader(os.Stdin)

	text, code := collectInput(ctx, stdin, os.Stdout, log)
	if code != exitOK {
		return code
	}

	if got := stats.WordCount(text.Content); got < cfg.MinInputWords {
		fmt.Printf("\nError: please provide valid input with at least %d words.\n",
			cfg.MinInputWords)

		return exitBadInput
	}

	fmt.Println("\nGenerating summary. Please wait...")
	result, err := pipe.Run(ctx, text.Content)
	if err != nil {
		log.ErrorContext(ctx, "Summarization failed",
			"error", err,
			"source", text.Source)

		fmt.Printf("\nError: %v\n", err)
		if errors.Is(err, summarizer.ErrEmptyInput) {
			return exitBadInput
		}

		return exitModelFailure
	}

	if err = report.Render(os.Stdout, result.Original, result.Summary, result.Stats); err != nil {
		log.ErrorContext(ctx, "Failed to render report",
			"error", err)

		return exitModelFailure
	}

	if promptYesNo(stdin, os.Stdout, "\nDo you want to save the summary to files? (y/n): ") {
		if code = saveResults(ctx, result, log); code != exitOK {
			return code
		}
	}

	fmt.Println("\nProcess completed!")

	return exitOK
}

// collectInput asks for the input method and reads the text accordingly.
func collectInput(
	ctx context.Context,
	stdin *bufio.Reader,
	w io.Writer,
	log *slog.Logger,
) (input.Text, int) {
	fmt.Fprintln(w, "\nChoose input method:")
	fmt.Fprintln(w, "1. Paste text manually")
	fmt.Fprintln(w, "2. Load from a .txt file")
	fmt.Fprint(w, "\nEnter choice (1 or 2): ")

	choice, err := readLine(stdin)
	if err != nil {
		log.ErrorContext(ctx, "Failed to read choice",
			"error", err)

		return input.Text{}, exitBadInput
	}

	switch choice {
	case "1":
		fmt.Fprintln(w, "\nEnter the text to summarize. Press Enter twice to submit:")
		fmt.Fprintln(w)

		text, readErr := input.ReadInteractive(stdin)
		if readErr != nil {
			log.ErrorContext(ctx, "Failed to read interactive input",
				"error", readErr)

			return input.Text{}, exitBadInput
		}

		return text, exitOK
	case "2":
		fmt.Fprint(w, "Enter the path to your .txt file: ")

		path, readErr := readLine(stdin)
		if readErr != nil {
			log.ErrorContext(ctx, "Failed to read file path",
				"error", readErr)

			return input.Text{}, exitBadInput
		}

		text, readErr := input.ReadFile(strings.TrimSpace(path))
		if readErr != nil {
			log.ErrorContext(ctx, "Failed to read input file",
				"error", readErr,
				"path", path)

			fmt.Fprintf(w, "\nError: %v\n", readErr)
			if errors.Is(readErr, fs.ErrNotExist) {
				return input.Text{}, exitFileNotFound
			}

			return input.Text{}, exitBadInput
		}

		return text, exitOK
	default:
		fmt.Fprintln(w, "\nInvalid choice.")

		return input.Text{}, exitBadInput
	}
}

func saveResults(ctx context.Context, result *pipeline.Result, log *slog.Logger) int {
	if err := report.SaveText(report.TextOutputPath, result.Original, result.Summary); err != nil {
		log.ErrorContext(ctx, "Failed to save text output",
			"error", err,
			"path", report.TextOutputPath)

		return exitBadInput
	}
	fmt.Printf("\nSummary saved to: %s\n", report.TextOutputPath)

	if err := report.SaveMarkdown(report.MarkdownOutputPath, result.Summary); err != nil {
		log.ErrorContext(ctx, "Failed to save markdown output",
			"error", err,
			"path", report.MarkdownOutputPath)

		return exitBadInput
	}
	fmt.Printf("Summary also saved to: %s\n", report.MarkdownOutputPath)

	return exitOK
}

func promptYesNo(stdin *bufio.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)

	answer, err := readLine(stdin)
	if err != nil {
		return false
	}

	return strings.EqualFold(answer, "y")
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func printBanner(w io.Writer) {
	line := strings.Repeat("=", bannerWidth)
	title := "TEXT SUMMARIZATION TOOL"
	padding := (bannerWidth - len(title)) / 2

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, strings.Repeat(" ", padding)+title)
	fmt.Fprintln(w, line)
}
