// Package logging builds the zap logger used by the m61 command.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings understood by New.
const (
	CONSOLE = "console"
	JSON    = "json"
	LOGFMT  = "logfmt"
)

// Config selects the level, encoding and destination of log records.
type Config struct {
	// Level is a zap level name; empty means "info".
	Level string
	// Format is one of CONSOLE, JSON or LOGFMT; empty means LOGFMT.
	Format string
	// Writer receives encoded records; nil means os.Stderr.
	Writer io.Writer
}

// New returns a logger named "m61" built from c.
func New(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(c.Level))); err != nil {
			return nil, errors.Wrapf(err, "invalid logging level %q", c.Level)
		}
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case "", LOGFMT:
		encoder = zaplogfmt.NewEncoder(encoderConfig())
	case JSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig())
	case CONSOLE:
		encoder = zapcore.NewConsoleEncoder(encoderConfig())
	default:
		return nil, errors.Errorf("unknown logging format %q", c.Format)
	}

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	var sw zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		sw = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		sw = t
	default:
		sw = zapcore.AddSync(w)
	}

	core := zapcore.NewCore(encoder, sw, zap.NewAtomicLevelAt(level))
	return zap.New(core).Named("m61"), nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "name",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
