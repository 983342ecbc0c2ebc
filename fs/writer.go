// Package fs saves captured notes into a vault directory on disk.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/clipvault"
)

// maxCollisionAttempts bounds how many suffixed names are tried for one note.
const maxCollisionAttempts = 8

// Ensure VaultWriter implements clipvault.NoteWriter at compile time.
var _ clipvault.NoteWriter = (*VaultWriter)(nil)

// VaultWriter writes notes as files below a vault root directory.
type VaultWriter struct {
	root string
}

// NewVaultWriter creates a new VaultWriter rooted at dir.
func NewVaultWriter(dir string) *VaultWriter {
	return &VaultWriter{root: dir}
}

// WriteNote writes the note to <root>/<folder>/<filename> and returns the
// path it was written to. An existing file is never replaced: on a name
// collision a short content hash is appended to the file's base name.
func (w *VaultWriter) WriteNote(ctx context.Context, file *clipvault.NoteFile) (string, error) {
	if err := file.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(w.root, filepath.FromSlash(file.Folder))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", clipvault.Errorf(clipvault.EINTERNAL, "creating folder %s: %v", dir, err)
	}

	for attempt := 0; attempt < maxCollisionAttempts; attempt++ {
		path := filepath.Join(dir, CollisionName(file.Filename, file.Content, attempt))
		err := writeExclusive(path, file.Content)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", clipvault.Errorf(clipvault.EINTERNAL, "writing %s: %v", path, err)
		}
	}

	return "", clipvault.Errorf(clipvault.ECONFLICT, "note %q already exists in %s", file.Filename, dir)
}

// CollisionName returns the filename to try on the given attempt. Attempt 0
// is the name itself; later attempts insert an xxhash-derived suffix before
// the extension.
func CollisionName(filename, content string, attempt int) string {
	if attempt == 0 {
		return filename
	}
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	sum := xxhash.Sum64String(fmt.Sprintf("%s\x00%d", content, attempt))
	return fmt.Sprintf("%s-%06x%s", base, sum&0xffffff, ext)
}

func writeExclusive(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
