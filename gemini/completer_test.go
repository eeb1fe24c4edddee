package gemini_test

import (
	"context"
	"testing"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
	"github.com/wellspentstyle/SaleSite-sub000/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete_EmptySystem(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "")

	_, err := completer.Complete(context.Background(), "", "prompt")
	require.Error(t, err)
	assert.Equal(t, salesite.EINVALID, salesite.ErrorCode(err))
}

func TestCompleter_Complete_EmptyPrompt(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "")

	_, err := completer.Complete(context.Background(), "system", "")
	require.Error(t, err)
	assert.Equal(t, salesite.EINVALID, salesite.ErrorCode(err))
}

// Compile-time verification that Completer implements salesite.Completer.
var _ salesite.Completer = (*gemini.Completer)(nil)
