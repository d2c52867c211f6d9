package interfaces

import "context"

// Logger is the leveled logging contract used across jotdown services. The
// method set matches github.com/goliatone/go-logger so a glog logger can be
// adapted without extra plumbing.
//
// args are alternating key/value pairs ("count", 3, "path", p). Messages are
// dotted event names such as "notes.parse.completed" rather than sentences.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	// WithContext returns a logger bound to ctx. Implementations may read
	// request-scoped values from it; the receiver is not modified.
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. Names are dotted module paths
// ("jotdown.notes"); a provider may return nil for names it does not serve,
// in which case callers fall back to a no-op logger.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for loggers that can carry
// structured fields. The returned logger includes fields on every entry;
// the receiver is left untouched. Implementations may retain the map, so
// callers should hand over a copy they no longer write to.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
