package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceworks/invoice-pipeline/internal/async"
)

type fakeQueue struct {
	jobs []async.Job
	err  error
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestWalkDirectoryFiltersAndQueues(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"))
	writeFile(t, filepath.Join(root, "b.PNG"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "sub", "c.jpg"))
	writeFile(t, filepath.Join(root, ".hidden", "d.pdf"))
	writeFile(t, filepath.Join(root, ".secret.pdf"))

	q := &fakeQueue{}
	w := NewWalker(q, nil)

	results, stats, err := w.WalkDirectory(context.Background(), root, nil, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(3), stats.Queued)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, q.jobs, 3)
	assert.Len(t, results, 3)

	names := map[string]bool{}
	for _, j := range q.jobs {
		names[j.FileName] = true
	}
	assert.True(t, names["a.pdf"])
	assert.True(t, names["b.PNG"])
	assert.True(t, names["c.jpg"])
}

func TestWalkDirectoryCustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"))
	writeFile(t, filepath.Join(root, "b.png"))

	q := &fakeQueue{}
	w := NewWalker(q, nil)

	_, stats, err := w.WalkDirectory(context.Background(), root, []string{".pdf"}, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.Queued)
}

func TestWalkDirectoryEmptyRoot(t *testing.T) {
	w := NewWalker(&fakeQueue{}, nil)

	_, _, err := w.WalkDirectory(context.Background(), "  ", nil, true)
	assert.Error(t, err)
}

func TestWalkDirectoryEnqueueFailure(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"))

	q := &fakeQueue{err: errors.New("queue closed")}
	w := NewWalker(q, nil)

	_, stats, err := w.WalkDirectory(context.Background(), root, nil, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.Failed)
	assert.Equal(t, uint32(0), stats.Queued)
}
