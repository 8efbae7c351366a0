package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// Global logger instance
var defaultLogger = New("info", "json", os.Stdout)

// New builds a logrus logger. Unknown levels fall back to info and any
// format other than "text" produces JSON.
func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	if strings.EqualFold(format, "text") {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "ts",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}

// Init replaces the global logger and returns it.
func Init(level, format string) *logrus.Logger {
	defaultLogger = New(level, format, os.Stdout)
	return defaultLogger
}

// L returns the global logger.
func L() *logrus.Logger {
	return defaultLogger
}

// WithRequestID stores a request-scoped entry in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	entry := logrus.NewEntry(defaultLogger)
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	return context.WithValue(ctx, ctxKey{}, entry)
}

// FromContext returns the request-scoped entry, or a plain entry on the
// global logger when none was stored.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(defaultLogger)
}

// Package-level functions for easy access
func Debug(format string, v ...interface{}) { defaultLogger.Debugf(format, v...) }
func Info(format string, v ...interface{})  { defaultLogger.Infof(format, v...) }
func Warn(format string, v ...interface{})  { defaultLogger.Warnf(format, v...) }
func Error(format string, v ...interface{}) { defaultLogger.Errorf(format, v...) }
func Fatal(format string, v ...interface{}) { defaultLogger.Fatalf(format, v...) }
