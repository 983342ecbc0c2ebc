package clipvault

import (
	"context"
	"strings"
)

// NoteFile is a rendered capture waiting to be saved.
type NoteFile struct {
	// Folder is relative to the vault root; empty means the root.
	Folder   string
	Filename string
	Content  string
}

// Validate returns an error if the file cannot be saved.
func (f *NoteFile) Validate() error {
	if f.Filename == "" {
		return Errorf(EINVALID, "note filename required")
	}
	if strings.ContainsAny(f.Filename, `/\`) {
		return Errorf(EINVALID, "note filename %q must not contain a path separator", f.Filename)
	}
	if strings.Contains(f.Folder, "..") {
		return Errorf(EINVALID, "note folder %q must stay inside the vault", f.Folder)
	}
	return nil
}

// NoteWriter saves rendered notes.
type NoteWriter interface {
	// WriteNote saves the file and returns where it was written.
	// Existing files are never overwritten.
	WriteNote(ctx context.Context, file *NoteFile) (string, error)
}
