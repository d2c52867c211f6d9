package notes

import (
	"path"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-jotdown/internal/identity"
	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

// NoteID derives a stable UUID from the note path so listings and loads agree
// on identity across runs.
func NoteID(notePath string) uuid.UUID {
	return identity.NoteUUID(notePath)
}

// NoteSlug normalises a title into a URL-safe slug. The file extension is
// dropped first.
func NoteSlug(title string) string {
	base := strings.TrimSuffix(title, path.Ext(title))
	if s, err := slug.Normalize(base); err == nil && s != "" {
		return s
	}
	return strings.ToLower(strings.TrimSpace(base))
}

func newHeading(notePath string) interfaces.NoteHeading {
	title := path.Base(notePath)
	return interfaces.NoteHeading{
		ID:    NoteID(notePath),
		Title: title,
		Slug:  NoteSlug(title),
		Path:  notePath,
	}
}
