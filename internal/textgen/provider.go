// Package textgen produces the natural-language copy the chatbot shows:
// confirmations, treatment blurbs, success stories. Every surface has a
// deterministic fallback string, so a provider failure is never visible to
// the patient as an error.
package textgen

import (
	"context"
	"fmt"
)

// Provider turns a prompt into generated text.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderError reports a failed or timed-out generation call. Callers
// substitute the surface's fallback string and move on.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("textgen: generation failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// GenerateOrFallback runs the provider and substitutes fallback on any
// failure or empty result. A nil provider always yields the fallback.
func GenerateOrFallback(ctx context.Context, p Provider, prompt, fallback string) string {
	if p == nil {
		return fallback
	}
	text, err := p.Generate(ctx, prompt)
	if err != nil || text == "" {
		return fallback
	}
	return text
}
