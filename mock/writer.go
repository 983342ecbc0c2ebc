package mock

import (
	"context"

	"github.com/fwojciec/clipvault"
)

var _ clipvault.NoteWriter = (*NoteWriter)(nil)

// NoteWriter is a mock implementation of clipvault.NoteWriter.
type NoteWriter struct {
	WriteNoteFn func(ctx context.Context, file *clipvault.NoteFile) (string, error)
}

func (w *NoteWriter) WriteNote(ctx context.Context, file *clipvault.NoteFile) (string, error) {
	return w.WriteNoteFn(ctx, file)
}
