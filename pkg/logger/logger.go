// Package logger is the zap logger carried through request contexts.
//
// Middleware stores the logger in the context; services log through the
// package functions, which add the request, trace and user ids found there.
package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appctx "gestobra/internal/core/context"
)

// Logger is a sugared zap logger. Use the Infow/Warnw/Errorw family directly
// where no request context exists (startup, shutdown, CLI tools).
type Logger struct {
	*zap.SugaredLogger
}

type ctxKey struct{}

// Config selects the level and encoding. Unknown levels fall back to info.
type Config struct {
	Level       string
	Development bool
	// OutputPaths overrides zap's default sinks (stderr in production).
	OutputPaths []string
}

func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}

	z, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return NewFromZap(z), nil
}

// NewFromZap wraps z; tests pass an observer core.
func NewFromZap(z *zap.Logger) *Logger {
	return &Logger{z.Sugar()}
}

var (
	fallbackOnce sync.Once
	fallback     *Logger
)

// Default is the JSON stdout logger used when none was configured.
func Default() *Logger {
	fallbackOnce.Do(func() {
		zc := zap.NewProductionConfig()
		zc.OutputPaths = []string{"stdout"}
		z, err := zc.Build(zap.AddCallerSkip(1))
		if err != nil {
			z = zap.NewNop()
		}
		fallback = NewFromZap(z)
	})
	return fallback
}

// WithContext returns l annotated with the ids in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	fields := appctx.LogFields(ctx)
	if len(fields) == 0 {
		return l
	}
	return &Logger{l.SugaredLogger.With(fields...)}
}

func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request logger, or Default outside a request.
func FromContext(ctx context.Context) *Logger {
	l, ok := ctx.Value(ctxKey{}).(*Logger)
	if !ok {
		l = Default()
	}
	return l.WithContext(ctx)
}

func Debug(ctx context.Context, msg string, kv ...any) { FromContext(ctx).Debugw(msg, kv...) }
func Info(ctx context.Context, msg string, kv ...any)  { FromContext(ctx).Infow(msg, kv...) }
func Warn(ctx context.Context, msg string, kv ...any)  { FromContext(ctx).Warnw(msg, kv...) }
func Error(ctx context.Context, msg string, kv ...any) { FromContext(ctx).Errorw(msg, kv...) }
