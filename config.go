package ember

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config describes how a Scene builds its particle systems, animators and
// logger. The zero value is not useful; start from DefaultConfig.
type Config struct {
	// PoolSize is the number of expired particle buffers each system keeps.
	PoolSize int            `yaml:"pool_size"`
	Animator AnimatorConfig `yaml:"animator"`
	Log      LogConfig      `yaml:"log"`
	// Debug enables per-frame timing stats at debug log level.
	Debug bool `yaml:"debug"`
}

// AnimatorConfig holds the defaults applied by Scene.NewAnimator.
type AnimatorConfig struct {
	DeletePastAnimations bool    `yaml:"delete_past_animations"`
	UseWorldTime         bool    `yaml:"use_world_time"`
	Speed                float64 `yaml:"speed"`
}

// LogConfig selects the logger's level and encoding.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Encoding is console or json.
	Encoding string `yaml:"encoding"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		PoolSize: defaultPoolSize,
		Animator: AnimatorConfig{
			DeletePastAnimations: true,
			Speed:                1,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// LoadConfig decodes YAML from r over DefaultConfig, so omitted keys keep
// their defaults, and validates the result.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate reports the first invalid field in c.
func (c Config) Validate() error {
	if c.PoolSize < 0 {
		return errors.Errorf("config: pool_size %d must not be negative", c.PoolSize)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "config: log.level")
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return errors.Errorf("config: log.encoding %q must be console or json", c.Log.Encoding)
	}
	return nil
}
