// Package logger builds the zap logger shared by every component.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"docqa/internal/config"
)

// New returns a JSON logger writing to stdout.
func New(env string) *zap.Logger {
	return NewWithWriter(os.Stdout, env)
}

// NewWithWriter returns a JSON logger writing one object per line to w.
// Entries carry ts (RFC3339Nano), level and msg keys. Development adds
// debug level and stack traces on errors.
func NewWithWriter(w io.Writer, env string) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	level := zapcore.InfoLevel
	var opts []zap.Option
	if env == config.EnvDevelopment {
		level = zapcore.DebugLevel
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core, opts...)
}
