package mock

import (
	"context"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

var _ salesite.Completer = (*Completer)(nil)

// Completer is a mock implementation of salesite.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, system string, prompt string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, system string, prompt string) (string, error) {
	return c.CompleteFn(ctx, system, prompt)
}
