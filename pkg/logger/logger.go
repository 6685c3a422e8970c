package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the global logger. Production gets structured JSON, anything
// else gets the human-readable development encoder.
func Init(env, level string) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level.SetLevel(lvl)

	var err error
	log, err = cfg.Build()
	if err != nil {
		panic("logger init: " + err.Error())
	}
}

// L returns the global logger, falling back to a production logger when
// Init was never called (tests, mostly).
func L() *zap.Logger {
	if log == nil {
		log = zap.Must(zap.NewProduction())
	}
	return log
}

// FromContext returns the request-scoped logger placed in the echo context
// by the request-id middleware, or the global logger.
func FromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get("logger").(*zap.Logger); ok && l != nil {
		return l
	}
	return L()
}

func Sync() { _ = L().Sync() }
