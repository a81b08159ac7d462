package ember

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger writing to stderr at the configured level.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if cfg.Encoding == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         cfg.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return zc.Build(zap.Fields(zap.String("lib", "ember")))
}

// frameStats holds per-frame timing and counts.
// Only populated when the scene is in debug mode.
type frameStats struct {
	animateTime time.Duration
	renderTime  time.Duration
	animators   int
	animations  int
	systems     int
	particles   int
}

// tickStats holds per-tick timing and counts.
type tickStats struct {
	updateTime time.Duration
	systems    int
	particles  int
	pooled     int
}

// debugLogFrame logs frame stats at debug level.
func (s *Scene) debugLogFrame(stats frameStats) {
	s.log.Debug("frame",
		zap.Duration("animate", stats.animateTime),
		zap.Duration("render", stats.renderTime),
		zap.Duration("total", stats.animateTime+stats.renderTime),
		zap.Int("animators", stats.animators),
		zap.Int("animations", stats.animations),
		zap.Int("systems", stats.systems),
		zap.Int("particles", stats.particles),
	)
}

// debugLogTick logs tick stats at debug level.
func (s *Scene) debugLogTick(stats tickStats) {
	s.log.Debug("tick",
		zap.Int("screen_ticks", s.counters.ScreenTicks()),
		zap.Int("world_ticks", s.counters.WorldTicks()),
		zap.Duration("update", stats.updateTime),
		zap.Int("systems", stats.systems),
		zap.Int("particles", stats.particles),
		zap.Int("pooled", stats.pooled),
	)
}
