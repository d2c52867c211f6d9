package notes

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const jotsDirName = "jots"

// ResolveDataDir returns the jots directory. override replaces the platform
// data directory (XDG_DATA_HOME on Linux, Application Support on macOS,
// LocalAppData on Windows).
func ResolveDataDir(override string) (string, error) {
	base := strings.TrimSpace(override)
	if base == "" {
		base = strings.TrimSpace(xdg.DataHome)
	}
	if base == "" {
		return "", ErrNoDataDir
	}
	return filepath.Join(base, jotsDirName), nil
}

// PrepareDataDir creates the jots directory and the notes directory below it.
// Existing directories are left untouched.
func (s *Store) PrepareDataDir(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, dir := range []string{s.dataDir, s.notesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fsError("mkdir", dir, err)
		}
	}
	s.logger.Debug("notes.data_dir.prepared", "data_dir", s.dataDir, "notes_dir", s.notesDir)
	return nil
}
