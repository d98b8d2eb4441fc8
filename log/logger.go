package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// toSlog maps this package's Level (NDN-forwarder-style trace/fatal
// range) onto log/slog's numeric scale, which the Level constants in
// level.go are already chosen to line up with.
func (level Level) toSlog() slog.Level {
	return slog.Level(level)
}

var defaultLevel atomic.Int64

func init() {
	defaultLevel.Store(int64(LevelInfo))
}

// SetLevel sets the minimum level Default() logs at.
func SetLevel(level Level) {
	defaultLevel.Store(int64(level))
}

type levelVar struct{}

func (levelVar) Level() slog.Level {
	return slog.Level(defaultLevel.Load())
}

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: levelVar{},
}))

// Default returns the process-wide structured logger.
func Default() *slog.Logger { return defaultLogger }

// Trace logs at LevelTrace, below slog's own Debug floor, for the
// byte-level codec tracing this library's constrained-device profile
// occasionally needs.
func Trace(msg string, args ...any) {
	defaultLogger.Log(context.Background(), LevelTrace.toSlog(), msg, args...)
}

// Debug logs at LevelDebug.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs at LevelInfo.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs at LevelWarn.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs at LevelError.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Fatal logs at LevelFatal then exits the process.
func Fatal(msg string, args ...any) {
	defaultLogger.Log(context.Background(), LevelFatal.toSlog(), msg, args...)
	os.Exit(1)
}
