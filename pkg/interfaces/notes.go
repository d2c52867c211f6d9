package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-jotdown/internal/jotdown"
)

// NoteStore enumerates and loads notes kept in the jots data directory. I/O
// failures are reported here and never reach the block parser.
type NoteStore interface {
	PrepareDataDir(ctx context.Context) error
	ListNotes(ctx context.Context) ([]NoteHeading, error)
	LoadNote(ctx context.Context, path string) (*Note, error)
	ParseNote(ctx context.Context, path string) (*ParsedNote, error)
	LoadNotes(ctx context.Context) ([]*ParsedNote, error)
}

// NoteHeading identifies a stored note. Title is derived from the file name.
type NoteHeading struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
	Path  string    `json:"path"`
}

// Note is the raw content of a single note file.
type Note struct {
	NoteHeading
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
	// Checksum is the SHA-256 digest of the file content.
	Checksum []byte
}

// FrontMatter holds optional YAML metadata at the top of a note.
type FrontMatter struct {
	Title  string         `yaml:"title" json:"title,omitempty"`
	Tags   []string       `yaml:"tags" json:"tags,omitempty"`
	Date   time.Time      `yaml:"date" json:"date,omitempty"`
	Custom map[string]any `yaml:",inline" json:"custom,omitempty"`
}

// ParsedNote pairs a note with the blocks recognised in its body.
type ParsedNote struct {
	*Note
	Result jotdown.Result
}
