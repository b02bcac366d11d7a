package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/narender/store-manager/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("anything"))
}

func TestNewLoggerWritesJSONOutsideProduction(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(config.NewConfig(config.WithLogLevel("warn")), &buf)

	l.Info("dropped")
	l.Warn("kept", slog.String("product_id", "abc"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "abc", rec["product_id"])
	assert.Equal(t, "store-manager", rec["service"])
}
