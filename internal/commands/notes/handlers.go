package notescmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-jotdown/internal/commands"
	"github.com/goliatone/go-jotdown/internal/logging"
	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

const (
	prepareOperation = "notes.prepare_data_dir"
	warmOperation    = "notes.warm"
	parseOperation   = "notes.parse"
)

// ErrStoreRequired is returned when handlers are built without a note store.
var ErrStoreRequired = errors.New("notes command: store is nil")

// ParsedNote is the payload delivered to ParseNoteCommand sinks.
type ParsedNote = interfaces.ParsedNote

var (
	_ command.Commander[PrepareDataDirCommand] = (*PrepareDataDirHandler)(nil)
	_ command.Commander[WarmNotesCommand]      = (*WarmNotesHandler)(nil)
	_ command.Commander[ParseNoteCommand]      = (*ParseNoteHandler)(nil)
)

// PrepareDataDirHandler runs PrepareDataDirCommand against a note store.
type PrepareDataDirHandler struct {
	inner *commands.Handler[PrepareDataDirCommand]
}

// NewPrepareDataDirHandler binds the handler to store.
func NewPrepareDataDirHandler(store interfaces.NoteStore, logger interfaces.Logger, opts ...commands.HandlerOption[PrepareDataDirCommand]) *PrepareDataDirHandler {
	baseLogger := loggerOrNoOp(logger)

	exec := func(ctx context.Context, _ PrepareDataDirCommand) error {
		return store.PrepareDataDir(ctx)
	}

	handlerOpts := []commands.HandlerOption[PrepareDataDirCommand]{
		commands.WithLogger[PrepareDataDirCommand](baseLogger),
		commands.WithOperation[PrepareDataDirCommand](prepareOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[PrepareDataDirCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PrepareDataDirHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[PrepareDataDirCommand].
func (h *PrepareDataDirHandler) Execute(ctx context.Context, msg PrepareDataDirCommand) error {
	return h.inner.Execute(ctx, msg)
}

// WarmNotesHandler runs WarmNotesCommand against a note store.
type WarmNotesHandler struct {
	inner *commands.Handler[WarmNotesCommand]
}

// NewWarmNotesHandler binds the handler to store.
func NewWarmNotesHandler(store interfaces.NoteStore, logger interfaces.Logger, opts ...commands.HandlerOption[WarmNotesCommand]) *WarmNotesHandler {
	baseLogger := loggerOrNoOp(logger)

	exec := func(ctx context.Context, msg WarmNotesCommand) error {
		parsed, err := warm(ctx, store, msg.Limit)
		if err != nil {
			return err
		}
		blocks := 0
		for _, note := range parsed {
			blocks += len(note.Result.Blocks)
		}
		logging.WithFields(baseLogger, map[string]any{
			"note_count":  len(parsed),
			"block_count": blocks,
		}).Info("notes.command.warm.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[WarmNotesCommand]{
		commands.WithLogger[WarmNotesCommand](baseLogger),
		commands.WithOperation[WarmNotesCommand](warmOperation),
		commands.WithMessageFields(func(msg WarmNotesCommand) map[string]any {
			if msg.Limit == 0 {
				return nil
			}
			return map[string]any{"limit": msg.Limit}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[WarmNotesCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &WarmNotesHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[WarmNotesCommand].
func (h *WarmNotesHandler) Execute(ctx context.Context, msg WarmNotesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ParseNoteHandler runs ParseNoteCommand against a note store.
type ParseNoteHandler struct {
	inner *commands.Handler[ParseNoteCommand]
}

// NewParseNoteHandler binds the handler to store.
func NewParseNoteHandler(store interfaces.NoteStore, logger interfaces.Logger, opts ...commands.HandlerOption[ParseNoteCommand]) *ParseNoteHandler {
	baseLogger := loggerOrNoOp(logger)

	exec := func(ctx context.Context, msg ParseNoteCommand) error {
		parsed, err := store.ParseNote(ctx, msg.Path)
		if err != nil {
			return err
		}
		if msg.Sink != nil {
			msg.Sink(parsed)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ParseNoteCommand]{
		commands.WithLogger[ParseNoteCommand](baseLogger),
		commands.WithOperation[ParseNoteCommand](parseOperation),
		commands.WithMessageFields(func(msg ParseNoteCommand) map[string]any {
			return map[string]any{"note_path": msg.Path}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ParseNoteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ParseNoteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ParseNoteCommand].
func (h *ParseNoteHandler) Execute(ctx context.Context, msg ParseNoteCommand) error {
	return h.inner.Execute(ctx, msg)
}

func warm(ctx context.Context, store interfaces.NoteStore, limit int) ([]*interfaces.ParsedNote, error) {
	if limit == 0 {
		return store.LoadNotes(ctx)
	}
	headings, err := store.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	if len(headings) > limit {
		headings = headings[:limit]
	}
	parsed := make([]*interfaces.ParsedNote, 0, len(headings))
	for _, heading := range headings {
		note, err := store.ParseNote(ctx, heading.Path)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, note)
	}
	return parsed, nil
}

func loggerOrNoOp(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
