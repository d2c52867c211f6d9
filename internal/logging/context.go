package logging

import (
	"context"

	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

type contextKey string

const contextFieldsKey contextKey = "jotdown.logging.fields"

// ContextWithFields returns a context carrying structured logging fields.
// Fields already on the context are kept unless overridden.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}

	merged := make(map[string]any, len(fields))
	for key, value := range ContextFields(ctx) {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return context.WithValue(ctx, contextFieldsKey, merged)
}

// ContextFields returns a copy of the fields stored by ContextWithFields.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, ok := ctx.Value(contextFieldsKey).(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}

	copied := make(map[string]any, len(fields))
	for key, val := range fields {
		copied[key] = val
	}
	return copied
}

// FromContext enriches logger with the fields stored on ctx.
func FromContext(ctx context.Context, logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		logger = NoOp()
	}
	return WithFields(logger.WithContext(ctx), ContextFields(ctx))
}
