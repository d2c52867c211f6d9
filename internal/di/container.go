package di

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	notescmd "github.com/goliatone/go-jotdown/internal/commands/notes"
	"github.com/goliatone/go-jotdown/internal/logging"
	"github.com/goliatone/go-jotdown/internal/logging/gologger"
	"github.com/goliatone/go-jotdown/internal/notes"
	"github.com/goliatone/go-jotdown/internal/runtimeconfig"
	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

// Container wires the logger provider, note store and command handlers from
// a runtime configuration.
type Container struct {
	config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	store          interfaces.NoteStore
	notesFS        fs.FS
	registry       notescmd.CommandRegistry

	handlers *notescmd.HandlerSet
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Logging.Provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithNoteStore replaces the filesystem-backed note store.
func WithNoteStore(store interfaces.NoteStore) Option {
	return func(c *Container) {
		if store != nil {
			c.store = store
		}
	}
}

// WithNotesFS reads notes from fsys instead of the notes directory.
func WithNotesFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.notesFS = fsys
	}
}

// WithCommandRegistry registers the note command handlers with reg.
func WithCommandRegistry(reg notescmd.CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// NewContainer validates cfg and builds the services it describes.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureNoteStore(); err != nil {
		return nil, err
	}

	handlers, err := notescmd.RegisterNoteCommands(c.registry, c.store, c.loggerProvider)
	if err != nil {
		return nil, fmt.Errorf("di: register note commands: %w", err)
	}
	c.handlers = handlers

	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(c.config.Logging.Provider)) {
	case "noop":
		c.loggerProvider = noopProvider{}
	default:
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.config.Logging.Level,
			Format:    c.config.Logging.Format,
			AddSource: c.config.Logging.AddSource,
			Focus:     c.config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure logger: %w", err)
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureNoteStore() error {
	if c.store != nil {
		return nil
	}

	cacheCapacity, cacheTTL := 0, time.Duration(0)
	if c.config.Cache.Enabled {
		cacheCapacity = c.config.Cache.Capacity
		cacheTTL = time.Duration(c.config.Cache.TTL)
	}

	var storeOpts []notes.Option
	if c.notesFS != nil {
		storeOpts = append(storeOpts, notes.WithFilesystem(c.notesFS))
	}

	store, err := notes.NewStore(notes.Config{
		DataDir:       c.config.DataDir,
		NotesDir:      c.config.Notes.Dir,
		Pattern:       c.config.Notes.Pattern,
		Recursive:     c.config.Notes.Recursive,
		Workers:       c.config.Notes.Workers,
		Frontmatter:   c.config.Notes.Frontmatter,
		CacheCapacity: cacheCapacity,
		CacheTTL:      cacheTTL,
		Logger:        logging.NotesLogger(c.loggerProvider),
	}, storeOpts...)
	if err != nil {
		return err
	}
	c.store = store
	return nil
}

// Config returns the validated configuration.
func (c *Container) Config() runtimeconfig.Config { return c.config }

// LoggerProvider returns the active logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// NoteStore returns the configured note store.
func (c *Container) NoteStore() interfaces.NoteStore { return c.store }

// NoteCommands returns the note command handlers.
func (c *Container) NoteCommands() *notescmd.HandlerSet { return c.handlers }

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }
