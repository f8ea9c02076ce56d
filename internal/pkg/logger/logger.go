// Package logger is a thin ctx-first facade over a process wide zap logger.
package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	mu  sync.RWMutex
	log = zap.Must(zap.NewProduction(zap.AddCallerSkip(1))).Sugar()
)

// Init replaces the global logger. Unknown levels fall back to info.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	Set(l)
	return nil
}

// Set installs l as the global logger. Used by tests to capture output.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l.Sugar()
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = log.Sync()
}

// WithRequestID stores the request id that every log line written with ctx will carry.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func from(ctx context.Context) *zap.SugaredLogger {
	mu.RLock()
	l := log
	mu.RUnlock()

	if id := RequestID(ctx); id != "" {
		return l.With("request_id", id)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Debugf(format, args...)
}

func Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	from(ctx).Infow(msg, keysAndValues...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	from(ctx).Errorw(msg, keysAndValues...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, args ...interface{}) {
	from(ctx).Fatal(args...)
}
