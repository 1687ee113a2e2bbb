package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "nonsense", "json")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestCtxAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "debug", "json")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestID(ctx))

	Ctx(ctx, base).Info().Msg("tagged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
}

func TestCtxWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "debug", "json")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	Ctx(context.Background(), base).Info().Msg("plain")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestCtxLeavesBaseUntagged(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "debug", "json")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	ctx := WithRequestID(context.Background(), "req-7")
	Ctx(ctx, base).Error().Msg("scoped")
	buf.Reset()

	base.Error().Msg("unscoped")
	assert.NotContains(t, buf.String(), "req-7")
}
