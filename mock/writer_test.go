package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/clipvault"
	"github.com/fwojciec/clipvault/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteWriter_WriteNote(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteNoteFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *clipvault.NoteFile
		w := &mock.NoteWriter{
			WriteNoteFn: func(_ context.Context, file *clipvault.NoteFile) (string, error) {
				calledWith = file
				return "/vault/" + file.Filename, nil
			},
		}

		file := &clipvault.NoteFile{Filename: "note.md", Content: "body"}

		path, err := w.WriteNote(context.Background(), file)

		require.NoError(t, err)
		assert.Equal(t, "/vault/note.md", path)
		assert.Same(t, file, calledWith)
	})
}
