// Package gemini generates marketing copy for catalog entries. It fails
// closed: without a usable credential, or on any provider error, callers get
// a fixed fallback sentence instead of an error.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	applog "aura/internal/log"
)

// FallbackDescription is returned whenever the provider cannot be reached.
const FallbackDescription = "A beautiful piece crafted with precision and elegance."

type Enhancer struct {
	APIKey string
	Model  string
}

func NewEnhancer(apiKey, model string) *Enhancer {
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	return &Enhancer{APIKey: apiKey, Model: model}
}

func (e *Enhancer) configured() bool {
	switch e.APIKey {
	case "", "undefined", `""`:
		return false
	}
	return true
}

// Enhance asks the model for a two-sentence luxury description of a jewelry
// item. Never returns an error; every failure path yields the fallback.
func (e *Enhancer) Enhance(ctx context.Context, name, category string) string {
	if !e.configured() {
		applog.Warn(nil, "gemini.unconfigured", map[string]any{"name": name})
		return FallbackDescription
	}
	if category == "" {
		category = "Jewelry"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: e.APIKey})
	if err != nil {
		applog.Error(nil, "gemini.client", err, nil)
		return FallbackDescription
	}

	prompt := fmt.Sprintf(
		"Write a 2-sentence luxury marketing description for a jewelry item named %q in the category %q.",
		name, category)
	resp, err := client.Models.GenerateContent(ctx, e.Model, genai.Text(prompt), nil)
	if err != nil {
		applog.Error(nil, "gemini.generate", err, map[string]any{"name": name})
		return FallbackDescription
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return FallbackDescription
}
