// Package logger provides request-scoped structured logging on top of logrus.
// Handlers and services log through the context so per-request fields such as
// the request id travel with the call chain.
package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
}

// SetLevel adjusts the global log level from its string name,
// falling back to info on unknown values
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	base.SetLevel(parsed)
}

// GetLogger returns the logger entry bound to ctx, or a plain entry
// when the context carries none
func GetLogger(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(contextKey{}).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(base)
}

// WithRequestID binds a request id field to the context logger
func WithRequestID(ctx context.Context, requestID string) context.Context {
	entry := GetLogger(ctx).WithField("request_id", requestID)
	return context.WithValue(ctx, contextKey{}, entry)
}

// WithField binds an extra field to the context logger
func WithField(ctx context.Context, key string, value interface{}) context.Context {
	entry := GetLogger(ctx).WithField(key, value)
	return context.WithValue(ctx, contextKey{}, entry)
}

// Info logs at info level with optional format arguments
func Info(ctx context.Context, format string, args ...interface{}) {
	if len(args) == 0 {
		GetLogger(ctx).Info(format)
		return
	}
	GetLogger(ctx).Infof(format, args...)
}

// Debugf logs at debug level
func Debugf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Debugf(format, args...)
}

// Warnf logs at warn level
func Warnf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Warnf(format, args...)
}

// Errorf logs at error level
func Errorf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Errorf(format, args...)
}
