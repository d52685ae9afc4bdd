package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Console: &buf})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("path", "a.ogg").Msg("probed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "probed")
	assert.Contains(t, out, "path=a.ogg")
}

func TestNewDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf})
	require.NoError(t, err)

	log.Info().Msg("quiet")
	log.Warn().Msg("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediaprobe.log")
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", File: path, Console: &buf})
	require.NoError(t, err)

	log.Debug().Str("format", "ogg").Msg("format rejected")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format":"ogg"`)
	assert.Contains(t, buf.String(), "format rejected")
}
