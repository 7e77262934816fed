// Package logging is the diagnostic channel of tdstatement. Every progress or
// anomaly event is a message plus structured fields; the production
// implementation writes one logrus entry per event to stderr so that stdout
// carries nothing but parsed documents.
package logging

// Logger is the structured logger passed to every component.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger that attaches err to every event.
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger
}

// Field is one key of a structured event. Keys should come from the Field*
// constants where one exists.
type Field struct {
	Key   string
	Value interface{}
}
