// Package ttlog builds the structured logger used across the solver pipeline.
package ttlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Env selects the logging profile.
type Env string

const (
	EnvProduction  Env = "production"
	EnvDevelopment Env = "development"
)

// New builds a zap.Logger for the given environment. Production emits JSON
// with ISO8601 timestamps; development emits a human-readable console format.
func New(env Env) (*zap.Logger, error) {
	var cfg zap.Config
	if env == EnvProduction {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Nop returns a logger that discards everything, for tests that do not
// want solver chatter on stdout.
func Nop() *zap.Logger {
	return zap.NewNop()
}
