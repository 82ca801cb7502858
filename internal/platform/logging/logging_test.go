package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewJSONHandlerRespectsLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := New("warn", "json", buf)
	logger.Info("dropped")
	logger.Warn("kept", "slot_key", "hour-9")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	record := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	require.Equal(t, "kept", record["msg"])
	require.Equal(t, "hour-9", record["slot_key"])
}

func TestNewTextHandlerIsDefault(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	New("info", "", buf).Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestOpenFileAppends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "dayplanner.log")
	logger, closer, err := OpenFile(path, "info", "text")
	require.NoError(t, err)
	logger.Info("first")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "msg=first")
}
