package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// LLMName identifies the chat-completion backend in Results.
const LLMName = "llm"

const (
	llmConfidence     = 0.90
	llmDefaultBaseURL = "https://api.openai.com"
	llmDefaultModel   = "gpt-4o-mini"
	llmTimeout        = 20 * time.Second
)

// LLM translates through a chat-completion-style HTTP API. The request
// carries a translation instruction as the system message and the source
// text as the user message; the response is expected to hold a single text
// choice.
type LLM struct {
	apiKey  string
	baseURL string
	model   string
	http    *resty.Client
}

// NewLLM creates the chat-completion backend. Empty baseURL and model fall
// back to the OpenAI-compatible defaults.
func NewLLM(apiKey, baseURL, model string) *LLM {
	if baseURL == "" {
		baseURL = llmDefaultBaseURL
	}
	if model == "" {
		model = llmDefaultModel
	}
	return &LLM{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    resty.New().SetTimeout(llmTimeout),
	}
}

// Name implements the Provider interface.
func (l *LLM) Name() string { return LLMName }

// Translate implements the Provider interface. A missing API key is reported
// as ErrMissingCredential before any request is issued.
func (l *LLM) Translate(ctx context.Context, req Request) (Result, error) {
	if l.apiKey == "" {
		return Result{}, ErrMissingCredential
	}

	system := fmt.Sprintf(
		"You are a professional translator. Translate the user's text from %s to %s. Reply with the translation only, no commentary.",
		req.From.DisplayName(), req.To.DisplayName(),
	)
	if req.Context != "" {
		system += " Context: " + req.Context
	}

	body := map[string]any{
		"model": l.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": req.Text},
		},
		"temperature": 0,
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	r, err := l.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+l.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(l.baseURL + "/v1/chat/completions")
	if err != nil {
		return Result{}, &ProviderError{Provider: LLMName, Err: err}
	}
	if r.IsError() {
		return Result{}, &ProviderError{
			Provider: LLMName,
			Err:      fmt.Errorf("%w: %s", ErrUnexpectedStatus, r.Status()),
		}
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return Result{}, &ProviderError{Provider: LLMName, Err: ErrMalformedResponse}
	}

	return Result{
		TranslatedText: strings.TrimSpace(resp.Choices[0].Message.Content),
		Confidence:     llmConfidence,
		Provider:       LLMName,
	}, nil
}
