package log

import "github.com/sirupsen/logrus"

// Logger is the logging surface used by the machine and the driver.
// It is satisfied by *logrus.Logger.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a logrus logger writing plain text lines, suitable for
// per-cycle traces that are diffed against other emulators.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewDebug returns a logger like New, with debug output enabled.
func NewDebug() Logger {
	l := New().(*logrus.Logger)
	l.SetLevel(logrus.DebugLevel)
	return l
}
