package ember

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
pool_size: 64
animator:
  use_world_time: true
  speed: 0.5
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.PoolSize)
	assert.True(t, cfg.Animator.UseWorldTime)
	assert.Equal(t, 0.5, cfg.Animator.Speed)
	assert.True(t, cfg.Animator.DeletePastAnimations, "omitted keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative pool": "pool_size: -1",
		"bad level":     "log: {level: loud}",
		"bad encoding":  "log: {encoding: xml}",
		"bad yaml":      "pool_size: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLoggerEncodings(t *testing.T) {
	for _, enc := range []string{"console", "json"} {
		l, err := NewLogger(LogConfig{Level: "warn", Encoding: enc})
		require.NoError(t, err, enc)
		assert.NotNil(t, l)
	}
	_, err := NewLogger(LogConfig{Level: "nope", Encoding: "json"})
	assert.Error(t, err)
}
