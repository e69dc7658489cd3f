package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultConstants(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 400.0, cfg.Screen.Width)
	assert.Equal(t, 600.0, cfg.Screen.Height)
	assert.Equal(t, 60, cfg.Screen.FPS)
	assert.Equal(t, 0.25, cfg.Physics.Gravity)
	assert.Equal(t, -4.0, cfg.Physics.JumpImpulse)
	assert.Equal(t, -2.0, cfg.Physics.ScrollVelocity)
	assert.Equal(t, 150.0, cfg.Pipes.GapSize)
	assert.Equal(t, 500.0, cfg.SpawnX())
	assert.Equal(t, 600.0, cfg.Spacing())
}

func TestParsePartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.5\npipes:\n  count: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, -4.0, cfg.Physics.JumpImpulse, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Pipes.Count)
	assert.Equal(t, 200.0, cfg.Spacing())
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.Screen.Width = 0 }},
		{"zero fps", func(s *Settings) { s.Screen.FPS = 0 }},
		{"rightward scroll", func(s *Settings) { s.Physics.ScrollVelocity = 1 }},
		{"gap taller than screen", func(s *Settings) { s.Pipes.GapSize = 700 }},
		{"no pipes", func(s *Settings) { s.Pipes.Count = 0 }},
		{"offscreen right of spawn", func(s *Settings) { s.Pipes.OffscreenX = 900 }},
		{"bird taller than screen", func(s *Settings) { s.Bird.Height = 600 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("screen: [not, a, map]"))
	assert.Error(t, err)

	_, err = Parse([]byte("screen:\n  fps: -1\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	custom := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("screen:\n  fps: 30\n"), 0o600))
	fromEnv := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(fromEnv, []byte("screen:\n  fps: 45\n"), 0o600))

	t.Run("embedded default", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		cfg, source, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, SourceEmbedded, source)
		assert.Equal(t, 60, cfg.Screen.FPS)
	})

	t.Run("local configs directory", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		local := filepath.Join(dir, "configs", "flappy.yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(local), 0o755))
		require.NoError(t, os.WriteFile(local, []byte("screen:\n  fps: 50\n"), 0o600))
		defer os.Remove(local)

		cfg, source, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("configs", "flappy.yaml"), source)
		assert.Equal(t, 50, cfg.Screen.FPS)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvConfigPath, fromEnv)
		cfg, source, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, fromEnv, source)
		assert.Equal(t, 45, cfg.Screen.FPS)
	})

	t.Run("custom path wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, fromEnv)
		cfg, source, err := Load(custom)
		require.NoError(t, err)
		assert.Equal(t, custom, source)
		assert.Equal(t, 30, cfg.Screen.FPS)
	})

	t.Run("missing custom path", func(t *testing.T) {
		_, _, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
