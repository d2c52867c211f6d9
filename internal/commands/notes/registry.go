package notescmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-jotdown/internal/commands"
	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

// CommandRegistry is the registration contract used when wiring handlers
// into a dispatcher.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the note command handlers.
type HandlerSet struct {
	Prepare *PrepareDataDirHandler
	Warm    *WarmNotesHandler
	Parse   *ParseNoteHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	prepareOpts []commands.HandlerOption[PrepareDataDirCommand]
	warmOpts    []commands.HandlerOption[WarmNotesCommand]
	parseOpts   []commands.HandlerOption[ParseNoteCommand]
}

// WithPrepareHandlerOptions forwards options to the PrepareDataDirHandler.
func WithPrepareHandlerOptions(opts ...commands.HandlerOption[PrepareDataDirCommand]) Option {
	return func(cfg *options) {
		cfg.prepareOpts = append(cfg.prepareOpts, opts...)
	}
}

// WithWarmHandlerOptions forwards options to the WarmNotesHandler.
func WithWarmHandlerOptions(opts ...commands.HandlerOption[WarmNotesCommand]) Option {
	return func(cfg *options) {
		cfg.warmOpts = append(cfg.warmOpts, opts...)
	}
}

// WithParseHandlerOptions forwards options to the ParseNoteHandler.
func WithParseHandlerOptions(opts ...commands.HandlerOption[ParseNoteCommand]) Option {
	return func(cfg *options) {
		cfg.parseOpts = append(cfg.parseOpts, opts...)
	}
}

// RegisterNoteCommands builds the note handlers and registers them with reg
// when it is non-nil.
func RegisterNoteCommands(reg CommandRegistry, store interfaces.NoteStore, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "notes")

	set := &HandlerSet{
		Prepare: NewPrepareDataDirHandler(store, logger, cfg.prepareOpts...),
		Warm:    NewWarmNotesHandler(store, logger, cfg.warmOpts...),
		Parse:   NewParseNoteHandler(store, logger, cfg.parseOpts...),
	}

	if reg != nil {
		for _, handler := range []any{set.Prepare, set.Warm, set.Parse} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}

// RegisterWarmCron schedules the warm handler through a cron registrar. The
// handler runs with a background context.
func RegisterWarmCron(reg CronRegistrar, handler *WarmNotesHandler, cfg command.HandlerConfig, msg WarmNotesCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
