package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs_RedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]any{"card_id", 7, "api_key", "sk-123", "redis_password", "hunter2"})
	assert.Equal(t, []any{"card_id", 7, "api_key", "[REDACTED]", "redis_password", "[REDACTED]"}, got)
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	got := sanitizeKVs([]any{"a", 1, "dangling"})
	assert.Equal(t, []any{"a", 1, "dangling"}, got)
}

func TestLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "review").Info("review recorded", "card_id", 3, "token", "abc")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "review recorded", entries[0].Message)
		assert.Equal(t, "review", fields["component"])
		assert.EqualValues(t, 3, fields["card_id"])
		assert.Equal(t, "[REDACTED]", fields["token"])
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"development", "production"} {
		l, err := New(mode)
		if assert.NoError(t, err, mode) {
			assert.NotNil(t, l.SugaredLogger)
		}
	}
}
