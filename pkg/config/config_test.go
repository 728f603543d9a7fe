package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Game.TPS)
	assert.Equal(t, "asset", cfg.Assets.Dir)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.BGMVolume)
	assert.Equal(t, "engine.wav", cfg.Audio.Engine)
	assert.Equal(t, "json", cfg.Ranking.Backend)
	assert.Equal(t, "ranking.json", cfg.RankingPath())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Debug.Keys)
}

func TestFileAndEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	body := `{"window": {"width": 1024}, "ranking": {"backend": "sqlite"}, "log": {"level": "debug"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "horizon.json"), []byte(body), 0644))
	t.Setenv("HORIZON_LOG_LEVEL", "warn")
	t.Setenv("HORIZON_AUDIO_ENABLED", "false")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "ranking.db", cfg.RankingPath())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Audio.Enabled)
}

func TestDotEnv(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)
	t.Setenv("HOME", t.TempDir())
	// Registers cleanup; godotenv never overrides a variable that is set.
	t.Setenv("HORIZON_ASSETS_DIR", "")
	require.NoError(t, os.Unsetenv("HORIZON_ASSETS_DIR"))
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".env"), []byte("HORIZON_ASSETS_DIR=data\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Assets.Dir)
}

func TestInvalidTPS(t *testing.T) {
	for _, tps := range []string{"0", "-1", "30", "120"} {
		t.Run(tps, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("HOME", t.TempDir())
			t.Setenv("HORIZON_GAME_TPS", tps)

			_, err := Load()
			assert.ErrorContains(t, err, "game.tps must be 60")
		})
	}
}
