package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.WarnLevel

	logger := NewWithWriter(cfg, &buf)
	logger.Info().Msg("dropped")
	logger.Warn().Str("k", "v").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, entry, "time")
}

func TestNewWithFile_WritesSessionLog(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Format = "json"

	logger, cleanup, err := NewWithFile(cfg, FileConfig{
		Dir:       dir,
		SessionID: "20260101_120000_beef",
		MaxSizeMB: 1,
	})
	require.NoError(t, err)
	logger.Info().Msg("hello")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "session_20260101_120000_beef.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session":"beef"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNewWithFile_EmptyDir(t *testing.T) {
	_, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{MaxSizeMB: 1})

	assert.Error(t, err)
	assert.NotPanics(t, cleanup)
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 2, 0, false)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	chunk := bytes.Repeat([]byte("x"), 600*1024)
	for range 5 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 2, backups)
	assert.FileExists(t, r.Path())
}

func TestLogRotator_RejectsZeroSize(t *testing.T) {
	_, err := NewLogRotator(t.TempDir(), "x.log", 0, 1, 0, false)
	assert.Error(t, err)
}

func TestSessionHelpers(t *testing.T) {
	id := GenerateSessionID()
	name := SessionFilename(id)

	parsed, ok := ParseSessionFilename(name)

	require.True(t, ok)
	assert.Equal(t, id, parsed)
	assert.Len(t, ShortSessionID(id), 4)
	_, ok = ParseSessionFilename("other.log")
	assert.False(t, ok)
}

func TestParseSessionBackupFilename(t *testing.T) {
	tests := []struct {
		name   string
		wantID string
		wantOK bool
	}{
		{"session_20251217_205106_a7b3.log.2025-12-17-21-00-00.000000", "20251217_205106_a7b3", true},
		{"session_20251217_205106_a7b3.log.2025-12-17-21-00-00.000000.gz", "20251217_205106_a7b3", true},
		{"session_20251217_205106_a7b3.log", "", false},
		{"other.log.2025-12-17", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseSessionBackupFilename(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestLogRotator_ReportsProblemsInLogFile(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 1, 0, true)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	r.remove = func(string) error { return errors.New("permission denied") }

	chunk := bytes.Repeat([]byte("x"), 600*1024)
	for range 3 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"logrotate"`)
	assert.Contains(t, string(data), "permission denied")
	assert.Contains(t, string(data), `"level":"warn"`)
}

func TestLogRotator_CompressesBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 3, 0, true)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	chunk := bytes.Repeat([]byte("x"), 600*1024)
	for range 2 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "test.log.*.gz"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
	plain, err := filepath.Glob(filepath.Join(dir, "test.log.*[0-9]"))
	require.NoError(t, err)
	assert.Empty(t, plain)

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "logrotate")
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	ctx := WithContext(context.Background(), NewWithWriter(cfg, &buf))

	ctx = WithComponent(ctx, "snapshot")
	ctx = WithSize(ctx, 640, 480)
	FromContext(ctx).Info().Msg("render")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "snapshot", entry["component"])
	assert.EqualValues(t, 640, entry["width"])
	assert.EqualValues(t, 480, entry["height"])
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLogPanic_LogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	logger := NewWithWriter(cfg, &buf)

	assert.PanicsWithValue(t, "boom", func() {
		defer LogPanic(logger)
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)
	assert.Contains(t, buf.String(), `"message":"PANIC"`)
}
