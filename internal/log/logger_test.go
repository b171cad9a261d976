package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, level)

	_, err = ParseLevel("trace")
	assert.Error(t, err)
}

func TestSetLevel_FiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	require.NoError(t, SetLevel(LevelInfo))
	t.Cleanup(func() {
		SetLevel(LevelWarn)
	})

	Debug("hidden")
	Info("computed plan", slog.Int("term_months", 360))
	Warn("careful")
	Error("failed", slog.String("error", "boom"))

	assert.Equal(t, "computed plan term_months=360\n[WARN] careful\n[ERROR] failed error=boom\n", buf.String())
}

func TestSetLevel_Invalid(t *testing.T) {
	assert.Error(t, SetLevel(LogLevel("loud")))
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug)).
		With(slog.String("session", "mortgage")).
		WithGroup("plan")

	logger.Debug("rate derived", slog.Float64("monthly", 0.5))

	assert.Equal(t, "[DEBUG] rate derived session=mortgage plan.monthly=0.5\n", buf.String())
}
