package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using Google's Gemini API.
type GeminiProvider struct {
	client  *genai.Client
	modelID string
	timeout time.Duration
}

// NewGeminiProvider creates a Gemini-backed provider. The API key is
// required; flows that need generation fail at startup without it.
func NewGeminiProvider(ctx context.Context, apiKey, modelID string, timeout time.Duration) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("textgen: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("textgen: failed to create gemini client: %w", err)
	}

	return &GeminiProvider{client: client, modelID: modelID, timeout: timeout}, nil
}

// Generate sends the prompt to Gemini and returns the response text. The
// call is bounded by the provider timeout.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	model := p.client.GenerativeModel(p.modelID)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Err: err}
	}

	if len(resp.Candidates) == 0 {
		return "", &ProviderError{Err: errors.New("gemini returned no candidates")}
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ProviderError{Err: errors.New("gemini returned empty content")}
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// Close releases resources held by the Gemini client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
