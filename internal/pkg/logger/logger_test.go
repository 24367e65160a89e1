package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"wastepickup/internal/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "pickup-api", Level: zerolog.DebugLevel, Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-1")
	ctx = logg.WithPrincipal(ctx, "u1", "volunteer")
	logg.Info(ctx, "pickup accepted")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "pickup-api", entry["service"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "u1", entry["user_id"])
	assert.Equal(t, "volunteer", entry["actor_role"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pickup accepted", entry["message"])
}

func TestLogger_ErrorIncludesError(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "pickup-api", Output: &buf})

	logg.Error(context.Background(), "store failed", errors.New("connection refused"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "connection refused", entry["error"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "pickup-api", Level: zerolog.WarnLevel, Output: &buf})

	logg.Info(context.Background(), "hidden")
	logg.Debug(context.Background(), "hidden")

	assert.Empty(t, buf.String())
}

func TestLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "pickup-api", Output: &buf}).Component("status_snapshot_job")

	logg.Info(context.Background(), "started")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "status_snapshot_job", entry["component"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("loud"))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().Info(context.Background(), "discarded")
	})
}
