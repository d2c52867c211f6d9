package logging

import (
	"maps"

	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

// WithFields attaches structured fields when the logger supports the
// FieldsLogger extension.
//
// A nil logger or an empty fields map returns the logger as-is without
// allocating, so call sites can pass optional field sets unconditionally.
// The map is copied before it reaches the logger; callers may keep mutating
// their own map afterwards. Loggers that do not implement FieldsLogger are
// returned unchanged and the fields are dropped.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}
