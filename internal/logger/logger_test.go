package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" ERROR ", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, parseLevel(c.in), "parseLevel(%q)", c.in)
	}
}

func TestNewWritesJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Component: "pipeline", Writer: &buf})

	l.Debug().Msg("hidden")
	l.Info().Str("query", "react").Msg("dispatched")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug line should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "pipeline", entry["component"])
	assert.Equal(t, "react", entry["query"])
	assert.Equal(t, "dispatched", entry["message"])
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Format: "console", Writer: &buf})
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))

	var buf bytes.Buffer
	l := C(ctx, New(Options{Writer: &buf}))
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ghsearch.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("line\n")
	require.NoError(t, err)
}
