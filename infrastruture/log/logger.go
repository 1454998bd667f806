// Package log provides named, colour-tagged component loggers backed by logrus.
package log

import (
	"errors"
	"fmt"
	"io"

	"github.com/dtjokroa/Cat-Mouse-213/service/i"
	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrEmptyName = errors.New("logger name must not be empty")

var _ i.Logger = &Logger{}

// Logger writes leveled lines prefixed with a coloured [NAME] tag.
type Logger struct {
	prefix string
	base   *logrus.Logger
}

// New returns a logger for the component name writing to out.
// An empty color leaves the tag uncoloured.
func New(name, color string, out io.Writer) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})

	prefix := fmt.Sprintf("[%s]", name)
	if color != "" {
		prefix = color + prefix + colorReset
	}

	return &Logger{prefix: prefix, base: base}, nil
}

// SetLevel changes the minimum level; it accepts logrus level names such as "debug" or "warn".
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.base.SetLevel(lvl)
	return nil
}

// Info implements i.Logger.
func (l *Logger) Info(msg string) {
	l.base.Info(l.prefix + " " + msg)
}

// Warning implements i.Logger.
func (l *Logger) Warning(msg string) {
	l.base.Warn(l.prefix + " " + msg)
}

// Error implements i.Logger.
func (l *Logger) Error(msg string) {
	l.base.Error(l.prefix + " " + msg)
}

// Debug implements i.Logger.
func (l *Logger) Debug(msg string) {
	l.base.Debug(l.prefix + " " + msg)
}
