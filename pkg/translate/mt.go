package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// MTName identifies the machine-translation backend in Results.
const MTName = "mt"

const (
	mtConfidence     = 0.85
	mtDefaultBaseURL = "https://libretranslate.com"
	mtTimeout        = 15 * time.Second
)

// MT translates through a dedicated machine-translation endpoint
// (LibreTranslate wire shape): source text plus source/target locale codes
// in, a single translated-text field out.
type MT struct {
	apiKey  string
	baseURL string
	http    *resty.Client
}

// NewMT creates the machine-translation backend. An empty baseURL falls back
// to the public LibreTranslate endpoint.
func NewMT(apiKey, baseURL string) *MT {
	if baseURL == "" {
		baseURL = mtDefaultBaseURL
	}
	return &MT{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    resty.New().SetTimeout(mtTimeout),
	}
}

// Name implements the Provider interface.
func (m *MT) Name() string { return MTName }

// Translate implements the Provider interface. A missing API key is reported
// as ErrMissingCredential before any request is issued.
func (m *MT) Translate(ctx context.Context, req Request) (Result, error) {
	if m.apiKey == "" {
		return Result{}, ErrMissingCredential
	}

	body := map[string]any{
		"q":       req.Text,
		"source":  req.From.String(),
		"target":  req.To.String(),
		"format":  "text",
		"api_key": m.apiKey,
	}

	var resp struct {
		TranslatedText string `json:"translatedText"`
	}

	r, err := m.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(m.baseURL + "/translate")
	if err != nil {
		return Result{}, &ProviderError{Provider: MTName, Err: err}
	}
	if r.IsError() {
		return Result{}, &ProviderError{
			Provider: MTName,
			Err:      fmt.Errorf("%w: %s", ErrUnexpectedStatus, r.Status()),
		}
	}
	if strings.TrimSpace(resp.TranslatedText) == "" {
		return Result{}, &ProviderError{Provider: MTName, Err: ErrMalformedResponse}
	}

	return Result{
		TranslatedText: resp.TranslatedText,
		Confidence:     mtConfidence,
		Provider:       MTName,
	}, nil
}
