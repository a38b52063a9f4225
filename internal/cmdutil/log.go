// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a stderr logger for warnings. quiet drops warnings and
// keeps errors.
func NewLogger(dst io.Writer, quiet bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(dst)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	l.SetLevel(logrus.WarnLevel)
	if quiet {
		l.SetLevel(logrus.ErrorLevel)
	}
	return l
}

// Warnf logs through log when it is set.
func Warnf(log logrus.FieldLogger, format string, a ...any) {
	if log == nil {
		return
	}
	log.Warnf(format, a...)
}
