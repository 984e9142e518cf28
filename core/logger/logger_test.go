package logger_test

import (
	"testing"

	"speedtab/core/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}},
		{"WarnConsole", logger.Config{Level: "warn", Format: "console"}},
		{"UnknownLevel", logger.Config{Level: "verbose", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_LevelIsApplied(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestWithPlayer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	id := uuid.New()

	logger.WithPlayer(zap.New(core), id, "Steve", "lobby").Info("pushed")
	logger.WithPlayer(zap.New(core), id, "", "").Info("bare")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, id.String(), first["player_id"])
	assert.Equal(t, "Steve", first["player"])
	assert.Equal(t, "lobby", first["server"])

	second := entries[1].ContextMap()
	assert.Equal(t, id.String(), second["player_id"])
	assert.NotContains(t, second, "player")
	assert.NotContains(t, second, "server")
}
