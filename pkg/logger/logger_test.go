package logger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookbook/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates development logger", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("creates production logger with default level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "loudest")
		require.Error(t, err)
		assert.Nil(t, log)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("success when logger exists in context", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		retrievedLogger, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, retrievedLogger)
	})

	t.Run("error when no logger in context", func(t *testing.T) {
		retrievedLogger, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, retrievedLogger)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})

	t.Run("success with derived context", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		type ctxKeyType struct{}
		ctxKey := ctxKeyType{}

		ctx := logger.NewContext(context.Background(), testLogger)
		derivedCtx := context.WithValue(ctx, ctxKey, "some-value")

		retrievedLogger, err := logger.FromContext(derivedCtx)
		require.NoError(t, err)
		assert.Same(t, testLogger, retrievedLogger)
	})
}

func TestLog(t *testing.T) {
	t.Run("returns logger from context when present", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		assert.Same(t, testLogger, logger.Log(ctx))
	})

	t.Run("never returns nil without logger in context", func(t *testing.T) {
		log := logger.Log(context.Background())
		assert.NotNil(t, log)
	})

	t.Run("returns global logger after SetGlobalLogger", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		logger.SetGlobalLogger(testLogger)
		defer logger.SetGlobalLogger(nil)

		assert.Same(t, testLogger, logger.Log(context.Background()))
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates valid uuid", func(t *testing.T) {
		id := logger.GenerateRequestID()

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, parsed.String())
	})

	t.Run("stores and retrieves request id", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-123")

		id, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "req-123", id)
	})

	t.Run("empty request id is replaced with generated one", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.NotEmpty(t, id)

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("missing request id reports false", func(t *testing.T) {
		id, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
		assert.Empty(t, id)
	})
}
