package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging contract used throughout the emulator.
// Components never log through package globals; a Logger is
// passed in through options instead.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// New returns a Logger writing to stderr at the info level.
func New() Logger {
	return newLogrus(os.Stderr, logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing to stderr at the given
// level, which must be one of the logrus level names (e.g. "debug").
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return newLogrus(os.Stderr, lvl), nil
}

// NewWithWriter returns a debug level Logger writing to w.
func NewWithWriter(w io.Writer) Logger {
	return newLogrus(w, logrus.DebugLevel)
}

func newLogrus(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}

	return l
}
