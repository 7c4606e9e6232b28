package agent

import (
	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter measures the context block against the token budget.
type TokenCounter interface {
	Count(text string) int
}

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c tiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// heuristicCounter approximates tokens as four bytes each. Used when
// the model's encoding is unavailable.
type heuristicCounter struct{}

func (heuristicCounter) Count(text string) int {
	return len(text) / 4
}

// NewTokenCounter returns a counter for the given model, falling back
// to the byte heuristic when the encoding cannot be resolved.
func NewTokenCounter(model string) TokenCounter {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return heuristicCounter{}
	}
	return tiktokenCounter{enc: enc}
}
