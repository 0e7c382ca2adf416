package incfg

import "log"

// Logger receives diagnostic output from the load and save paths. The
// default registry logger is silent; install one with SetLogger.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// StdLogger writes through the standard library logger, tagging each line
// with a level and a component name.
type StdLogger struct {
	name string
}

// NewStdLogger returns a StdLogger with the given component name.
func NewStdLogger(name string) *StdLogger {
	return &StdLogger{name: name}
}

func (l *StdLogger) Debug(format string, args ...any) {
	log.Printf("[DEBUG] "+l.name+" | "+format, args...)
}

func (l *StdLogger) Info(format string, args ...any) {
	log.Printf("[INFO] "+l.name+" | "+format, args...)
}

func (l *StdLogger) Error(format string, args ...any) {
	log.Printf("[ERROR] "+l.name+" | "+format, args...)
}
