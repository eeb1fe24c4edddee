// Package gemini implements salesite.Completer using Google Gemini.
package gemini

import (
	"context"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements salesite.Completer at compile time.
var _ salesite.Completer = (*Completer)(nil)

// Completer issues completion calls against the Gemini API.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects
// DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends one completion call and returns the raw reply text.
func (c *Completer) Complete(ctx context.Context, system string, prompt string) (string, error) {
	if system == "" {
		return "", salesite.Errorf(salesite.EINVALID, "system instruction required")
	}
	if prompt == "" {
		return "", salesite.Errorf(salesite.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		buildConfig(system),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", salesite.Errorf(salesite.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildConfig returns the GenerateContentConfig for extraction calls.
// Temperature is kept low; the reply must follow a strict JSON schema.
func buildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature: &temp,
	}
}
