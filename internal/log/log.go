// Package log is a thin wrapper around sirupsen/logrus: regref's pipeline
// components depend on the Logger interface below, never on *logrus.Entry
// directly, so tests can substitute a no-op or buffering logger.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface every pipeline component is given.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	WithField(key string, value any) Logger
	Formatter() logrus.Formatter
}

type entryLogger struct {
	entry *logrus.Entry
}

// New builds a Logger writing to w at the given level. Verbose callers pass
// logrus.DebugLevel; the default run uses logrus.InfoLevel.
func New(w io.Writer, level logrus.Level) Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	return &entryLogger{entry: logrus.NewEntry(base)}
}

func (l *entryLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *entryLogger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *entryLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *entryLogger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

func (l *entryLogger) WithField(key string, value any) Logger {
	return &entryLogger{entry: l.entry.WithField(key, value)}
}

func (l *entryLogger) Formatter() logrus.Formatter {
	return l.entry.Logger.Formatter
}

// Discard returns a Logger that drops every message, for tests.
func Discard() Logger {
	return New(io.Discard, logrus.PanicLevel)
}
