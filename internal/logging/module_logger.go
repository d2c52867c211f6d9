package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

const (
	rootModule     = "jotdown"
	notesModule    = "jotdown.notes"
	commandsModule = "jotdown.commands"
)

const (
	fieldNotePath   = "note_path"
	fieldNoteTitle  = "note_title"
	fieldNoteAction = "action"
)

// ModuleLogger returns a logger scoped to module. A nil provider yields a
// no-op logger. The module name is attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// NotesLogger returns the logger namespace reserved for the note store.
func NotesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, notesModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider, name string) interfaces.Logger {
	name = strings.TrimSpace(name)
	if name == "" {
		return ModuleLogger(provider, commandsModule)
	}
	return ModuleLogger(provider, commandsModule+"."+name)
}

// WithNoteContext adds note path, title and action fields, skipping blanks.
func WithNoteContext(logger interfaces.Logger, path, title, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldNotePath] = trimmed
	}
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		fields[fieldNoteTitle] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldNoteAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
