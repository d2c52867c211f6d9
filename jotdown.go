// Package jotdown parses Jotdown notes into typed blocks and manages a local
// store of note files.
package jotdown

import (
	notescmd "github.com/goliatone/go-jotdown/internal/commands/notes"
	"github.com/goliatone/go-jotdown/internal/di"
	core "github.com/goliatone/go-jotdown/internal/jotdown"
	"github.com/goliatone/go-jotdown/internal/notes"
	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

type (
	Block         = core.Block
	Kind          = core.Kind
	Result        = core.Result
	Paragraph     = core.Paragraph
	Heading       = core.Heading
	UnorderedList = core.UnorderedList
	OrderedList   = core.OrderedList
	Checklist     = core.Checklist
	CheckItem     = core.CheckItem
)

const (
	KindParagraph     = core.KindParagraph
	KindHeading       = core.KindHeading
	KindUnorderedList = core.KindUnorderedList
	KindOrderedList   = core.KindOrderedList
	KindChecklist     = core.KindChecklist
)

type (
	NoteStore   = interfaces.NoteStore
	NoteHeading = interfaces.NoteHeading
	Note        = interfaces.Note
	ParsedNote  = interfaces.ParsedNote
	FrontMatter = interfaces.FrontMatter
	Logger      = interfaces.Logger

	NoteCommands          = notescmd.HandlerSet
	PrepareDataDirCommand = notescmd.PrepareDataDirCommand
	WarmNotesCommand      = notescmd.WarmNotesCommand
	ParseNoteCommand      = notescmd.ParseNoteCommand
)

var (
	ErrNoDataDir        = notes.ErrNoDataDir
	ErrNoteNotFound     = notes.ErrNoteNotFound
	ErrPathOutsideStore = notes.ErrPathOutsideStore
)

// Parse splits source into blocks. It never fails; unrecognised lines
// become paragraph text.
func Parse(source []byte) Result {
	return core.Parse(source)
}

// ParseString is Parse for string input.
func ParseString(source string) Result {
	return core.ParseString(source)
}

// Module is the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module from cfg. Options override individual services.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Notes returns the configured note store.
func (m *Module) Notes() NoteStore {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.NoteStore()
}

// Commands returns the note command handlers.
func (m *Module) Commands() *NoteCommands {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.NoteCommands()
}

// Logger returns a logger for module from the configured provider.
func (m *Module) Logger(module string) Logger {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider().GetLogger(module)
}
