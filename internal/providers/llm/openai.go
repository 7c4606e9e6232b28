// Package llm talks to the hosted chat-completions endpoint. One call
// per query: no streaming, no tool use, no retries.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sandevgo/suppd/internal/config"
	"github.com/sandevgo/suppd/internal/core"
)

type OpenAI struct {
	baseProvider
	temperature float64
	maxTokens   int
}

func NewOpenAI(cfg *config.OpenAIConfig) *OpenAI {
	return &OpenAI{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout),
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
	}
}

// Complete issues a single chat completion. Any transport failure,
// non-2xx status or malformed body comes back as *core.BackendError.
func (o *OpenAI) Complete(ctx context.Context, messages []core.Message) (core.Message, error) {
	payload := map[string]any{
		"model":       o.model,
		"messages":    messages,
		"temperature": o.temperature,
		"max_tokens":  o.maxTokens,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
		"User-Agent":    core.SuppUserAgent,
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload, headers)
	if err != nil {
		return core.Message{}, core.NewBackendError("llm", "complete", err)
	}
	defer resp.Body.Close()

	msg, err := parseCompletionResponse(resp)
	if err != nil {
		return core.Message{}, core.NewBackendError("llm", "complete", err)
	}
	return msg, nil
}

func parseCompletionResponse(resp *http.Response) (core.Message, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.Message{}, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return core.Message{}, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return core.Message{}, fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return core.Message{}, fmt.Errorf("empty choices: %s", string(data))
	}
	return result.Choices[0].Message, nil
}
