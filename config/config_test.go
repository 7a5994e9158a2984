package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/colscore/config"
	"github.com/katalvlaran/colscore/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig stores body as a YAML file in a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colscore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, distance.Manhattan, cfg.Metric)
	assert.True(t, cfg.ToStdout())
	assert.Equal(t, "column similarity for", cfg.NamePrefix)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "metric: euclidean\noutput: out.tsp.gz\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, distance.Euclidean, cfg.Metric)
	assert.Equal(t, "out.tsp.gz", cfg.Output)
	assert.False(t, cfg.ToStdout())
	assert.Equal(t, "column similarity for", cfg.NamePrefix, "missing keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, "metric: cosine\n"))
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)

	_, err = config.Load(writeConfig(t, "metric: [a, b\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "log_level: chatty\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeConfig(t, "output: \"  \"\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestParseLevel(t *testing.T) {
	l, err := config.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = config.ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, l)

	_, err = config.ParseLevel("loud")
	assert.Error(t, err)
}
