package logging

import (
	"context"
	"errors"
	"humandate/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEntriesBecomeFields(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	log := fromZap(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "debug", logging.Entry("n", 1))
	log.Info(ctx, "info", logging.Entry("query", "in 2 days"))
	log.Warning(ctx, "warning")
	logging.Error(ctx, log, errors.New("boom"), logging.Entry("query", "x"))

	entries := recorded.AllUntimed()
	require.Len(t, entries, 4)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, "in 2 days", entries[1].ContextMap()["query"])
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	require.Equal(t, "Unexpected error occurred.", entries[3].Message)
	require.Equal(t, "boom", entries[3].ContextMap()["err"])
}

func TestNewZapLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewZapLogger("loud")
	require.Error(t, err)

	log, err := NewZapLogger("warn")
	require.NoError(t, err)
	require.NotNil(t, log)
}
