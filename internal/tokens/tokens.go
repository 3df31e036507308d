package tokens

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// Encoder counts and truncates text in model tokens.
type Encoder struct {
	encoding *tiktoken.Tiktoken
}

// NewEncoder loads the token encoding for the given model, falling back to
// cl100k_base for models tiktoken does not know. Loading may fetch the BPE
// ranks on first use; the encoder is reused for the process lifetime.
func NewEncoder(model string) (*Encoder, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, fmt.Errorf("loading tokenizer: %w", err)
		}
	}

	return &Encoder{encoding: encoding}, nil
}

// Count returns the number of model tokens in text.
func (e *Encoder) Count(text string) int {
	return len(e.encoding.Encode(text, nil, nil))
}

// Truncate cuts text down to at most maxTokens model tokens. The second
// return value reports whether anything was cut.
func (e *Encoder) Truncate(text string, maxTokens int) (string, bool) {
	if maxTokens <= 0 {
		return text, false
	}

	ids := e.encoding.Encode(text, nil, nil)
	if len(ids) <= maxTokens {
		return text, false
	}

	return e.encoding.Decode(ids[:maxTokens]), true
}
