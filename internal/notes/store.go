package notes

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-jotdown/internal/logging"
	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

// Config configures where notes live and how they are loaded.
type Config struct {
	// DataDir overrides the platform data directory.
	DataDir string
	// NotesDir is the notes directory relative to the jots directory.
	NotesDir string
	// Pattern filters note file names (defaults to "*").
	Pattern   string
	Recursive bool
	// Workers bounds concurrent loads in LoadNotes; zero means GOMAXPROCS.
	Workers     int
	Frontmatter bool

	CacheCapacity int
	CacheTTL      time.Duration

	Logger interfaces.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithFilesystem replaces the notes filesystem, mainly for tests. Paths are
// resolved relative to its root.
func WithFilesystem(fsys fs.FS) Option {
	return func(s *Store) {
		if fsys != nil {
			s.fsys = fsys
		}
	}
}

// Store implements interfaces.NoteStore over a directory of note files.
type Store struct {
	dataDir     string
	notesDir    string
	fsys        fs.FS
	pattern     string
	recursive   bool
	workers     int
	frontmatter bool
	cache       *resultCache
	logger      interfaces.Logger
}

var _ interfaces.NoteStore = (*Store)(nil)

// NewStore resolves the data directory and builds a store. The directories
// are not created; call PrepareDataDir for that.
func NewStore(cfg Config, opts ...Option) (*Store, error) {
	dataDir, err := ResolveDataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	notesDir := strings.TrimSpace(cfg.NotesDir)
	if notesDir == "" {
		notesDir = "notes"
	}
	notesDir = filepath.Join(dataDir, notesDir)

	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*"
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	s := &Store{
		dataDir:     dataDir,
		notesDir:    notesDir,
		fsys:        os.DirFS(notesDir),
		pattern:     pattern,
		recursive:   cfg.Recursive,
		workers:     workers,
		frontmatter: cfg.Frontmatter,
		cache:       newResultCache(cfg.CacheCapacity, cfg.CacheTTL),
		logger:      logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// DataDir returns the resolved jots directory.
func (s *Store) DataDir() string { return s.dataDir }

// NotesDir returns the directory notes are read from.
func (s *Store) NotesDir() string { return s.notesDir }

// ListNotes returns a heading for every note file, ordered by path.
func (s *Store) ListNotes(ctx context.Context) ([]interfaces.NoteHeading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var headings []interfaces.NoteHeading
	walkErr := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fsError("list", s.displayPath(p), err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if p != "." && !s.recursive {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !s.matches(p) {
			return nil
		}
		headings = append(headings, newHeading(p))
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(headings, func(i, j int) bool {
		return headings[i].Path < headings[j].Path
	})

	s.logger.Debug("notes.list.completed", "count", len(headings))
	return headings, nil
}

// LoadNote reads one note. path is relative to the notes directory; absolute
// paths must point inside it.
func (s *Store) LoadNote(ctx context.Context, notePath string) (*interfaces.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := s.relative(notePath)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNoteNotFound, fsError("read", s.displayPath(rel), err))
		}
		return nil, fsError("read", s.displayPath(rel), err)
	}

	info, err := fs.Stat(s.fsys, rel)
	if err != nil {
		return nil, fsError("stat", s.displayPath(rel), err)
	}

	note := &interfaces.Note{
		NoteHeading:  newHeading(rel),
		Body:         data,
		LastModified: info.ModTime(),
	}
	if s.frontmatter {
		meta, body, err := ParseFrontMatter(data)
		if err != nil {
			return nil, fmt.Errorf("notes: %s: %w", rel, err)
		}
		note.FrontMatter = meta
		note.Body = body
	}
	sum := sha256.Sum256(data)
	note.Checksum = sum[:]

	return note, nil
}

// ParseNote loads a note and recognises the blocks in its body.
func (s *Store) ParseNote(ctx context.Context, notePath string) (*interfaces.ParsedNote, error) {
	note, err := s.LoadNote(ctx, notePath)
	if err != nil {
		return nil, err
	}

	result, cached := s.cache.parse(note.Checksum, note.Body)
	logging.WithNoteContext(s.logger, note.Path, note.Title, "parse").
		Debug("notes.parse.completed", "blocks", len(result.Blocks), "cached", cached)

	return &interfaces.ParsedNote{Note: note, Result: result}, nil
}

// LoadNotes parses every listed note concurrently. The result keeps the
// listing order; the first failure cancels the remaining loads.
func (s *Store) LoadNotes(ctx context.Context) ([]*interfaces.ParsedNote, error) {
	headings, err := s.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	parsed := make([]*interfaces.ParsedNote, len(headings))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)
	for i, heading := range headings {
		group.Go(func() error {
			note, err := s.ParseNote(groupCtx, heading.Path)
			if err != nil {
				return err
			}
			parsed[i] = note
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		s.logger.Error("notes.load_all.failed", "error", err)
		return nil, err
	}

	s.logger.Info("notes.load_all.completed", "count", len(parsed))
	return parsed, nil
}

// matches applies the pattern to the slash-separated base name; fs.FS paths
// never use the OS separator.
func (s *Store) matches(p string) bool {
	ok, err := path.Match(s.pattern, path.Base(p))
	return err == nil && ok
}

func (s *Store) relative(notePath string) (string, error) {
	trimmed := strings.TrimSpace(notePath)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty path", ErrNoteNotFound)
	}
	clean := filepath.Clean(trimmed)
	if filepath.IsAbs(clean) {
		rel, err := filepath.Rel(s.notesDir, clean)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("%w: %s", ErrPathOutsideStore, notePath)
		}
		clean = rel
	}
	clean = filepath.ToSlash(clean)
	if !fs.ValidPath(clean) {
		return "", fmt.Errorf("%w: %s", ErrPathOutsideStore, notePath)
	}
	return clean, nil
}

func (s *Store) displayPath(rel string) string {
	return filepath.Join(s.notesDir, filepath.FromSlash(rel))
}
