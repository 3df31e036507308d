package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

const limitMaxOutputTokens int64 = 4096

const instructionsTemplate = `Summarize the text into an abstractive summary of roughly %d to %d words.

Rules:
- Capture the main points and key details.
- Do not add information that is not in the text.
- Plain prose, no lists, no headings.
- Same language as the input.
- Output only the summary.`

// OpenAISummarizer calls OpenAI's Responses API to produce summaries.
type OpenAISummarizer struct {
	client openai.Client
	model  string
	opts   Options
}

// NewOpenAISummarizer builds a new summarizer instance. The client is created
// once and reused for the process lifetime.
func NewOpenAISummarizer(apiKey, model string, opts Options) *OpenAISummarizer {
	return &OpenAISummarizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		opts:   opts,
	}
}

// Summarize produces a single summary for the input text. Transport and API
// failures are reported as ErrModelUnavailable with the cause attached.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return "", ErrEmptyInput
	}

	instructions := fmt.Sprintf(
		instructionsTemplate,
		s.opts.MinSummaryTokens,
		s.opts.MaxSummaryTokens,
	)

	maxOutputTokens := baseOutputTokens(s.opts.MaxSummaryTokens)
	for {
		resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
			Model:           s.model,
			MaxOutputTokens: openai.Int(maxOutputTokens),
			Reasoning: responses.ReasoningParam{
				Effort: openai.ReasoningEffortLow,
			},
			Instructions: openai.String(instructions),
			Input: responses.ResponseNewParamsInputUnion{
				OfString: openai.String(text),
			},
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}

		if resp.Status == "incomplete" {
			if resp.IncompleteDetails.Reason == "max_output_tokens" && maxOutputTokens < limitMaxOutputTokens {
				maxOutputTokens *= 2
				if maxOutputTokens > limitMaxOutputTokens {
					maxOutputTokens = limitMaxOutputTokens
				}
				continue
			}
			return "", fmt.Errorf(
				"%w: response is incomplete (reason = %s, maxOutputTokens = %d)",
				ErrModelUnavailable,
				resp.IncompleteDetails.Reason,
				maxOutputTokens,
			)
		}

		summary := strings.TrimSpace(resp.OutputText())
		if summary == "" {
			return "", fmt.Errorf(
				"%w: output text is missing (status = %s)",
				ErrModelUnavailable,
				resp.Status,
			)
		}
		return summary, nil
	}
}

// baseOutputTokens leaves the model headroom above the summary bound for
// reasoning tokens, which count against the output budget.
func baseOutputTokens(maxSummaryTokens int64) int64 {
	base := maxSummaryTokens * 4
	if base < 512 {
		base = 512
	}
	if base > limitMaxOutputTokens {
		base = limitMaxOutputTokens
	}
	return base
}
