package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	n, err := pw.Write([]byte("first\nsec"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, "> first\n", out.String())

	_, err = pw.Write([]byte("ond\nthird"))
	require.NoError(t, err)
	assert.Equal(t, "> first\n> second\n", out.String())

	require.NoError(t, pw.Flush())
	assert.Equal(t, "> first\n> second\n> third", out.String())

	require.NoError(t, pw.Flush())
	assert.Equal(t, "> first\n> second\n> third", out.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in        string
		wantLevel string
		wantJSON  bool
	}{
		{"debug", "debug", false},
		{"", "", false},
		{"json", "info", true},
		{"json:trace", "trace", true},
		{"json:", "info", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level, jsonFormat := ParseLevel(tt.in)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantJSON, jsonFormat)
		})
	}
}

func TestResolveLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	level, source := ResolveLogLevel("")
	assert.Equal(t, DefaultLevel, level)
	assert.Equal(t, "default", source)

	t.Setenv(EnvLogLevel, "debug")
	level, source = ResolveLogLevel("")
	assert.Equal(t, "debug", level)
	assert.Equal(t, EnvLogLevel, source)

	level, source = ResolveLogLevel("error")
	assert.Equal(t, "error", level)
	assert.Equal(t, "CLI --log-level", source)
}

func TestNewLogger_Text(t *testing.T) {
	t.Setenv(EnvJSONLog, "")
	var out bytes.Buffer
	logger := NewLogger("substrate-test", "info", &out)

	logger.Debug("hidden")
	logger.Info("Built arguments", "count", 3)

	assert.True(t, strings.HasSuffix(out.String(), "\n"), "entry written without Flush")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "☕ "))
	assert.Contains(t, lines[0], "Built arguments")
	assert.Contains(t, lines[0], "count=3")
}

func TestNewLogger_JSON(t *testing.T) {
	t.Setenv(EnvJSONLog, "")
	var out bytes.Buffer
	logger := NewLogger("substrate-test", "json:info", &out)
	logger.Info("Built arguments", "fingerprint", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry))
	assert.Equal(t, "Built arguments", entry["@message"])
	assert.Equal(t, "abc", entry["fingerprint"])
	assert.Equal(t, "substrate-test", entry["@module"])
}

func TestOrNull(t *testing.T) {
	assert.NotNil(t, OrNull(nil))
	logger := NewLogger("x", "info", &bytes.Buffer{})
	assert.Equal(t, logger, OrNull(logger))
}
