package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FromContext(t *testing.T) {
	t.Run("returns logger stored in ctx", func(t *testing.T) {
		log := New()
		ctx := context.WithValue(context.Background(), ContextKey, log)
		require.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to a fresh logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
