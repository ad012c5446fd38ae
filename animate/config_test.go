package animate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		config, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "frames_per_step: 10\nstart_paused: false\n")
		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 10, config.FramesPerStep)
		assert.False(t, config.StartPaused)
		assert.Equal(t, 2, config.SpeedStep)
		assert.Equal(t, 1280, config.WindowWidth)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "reading config")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "frames_per_step: [1, 2\n"))
		assert.ErrorContains(t, err, "parsing config")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "frames_per_step: 0\n"))
		assert.ErrorContains(t, err, "frames_per_step must be at least 1")
	})
}
