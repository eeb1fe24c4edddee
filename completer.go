package salesite

import "context"

// Completer issues a single LLM completion call. It is the narrow seam
// between the extraction pipeline and the model provider.
type Completer interface {
	// Complete sends the system instruction and user prompt and returns the
	// raw model reply text.
	Complete(ctx context.Context, system string, prompt string) (string, error)
}
