package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonflow-backend/storage"
)

type note struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

func (n note) RecordID() int { return n.ID }

func (n note) WithRecordID(id int) note {
	n.ID = id
	return n
}

func newTestStore(t *testing.T) (*storage.Store[note], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.json")
	return storage.NewStore[note](path), path
}

func TestListMissingFileIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListMalformedFileIsEmpty(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Insert(note{Text: "first"})
	require.NoError(t, err)
	second, err := store.Insert(note{Text: "second"})
	require.NoError(t, err)
	third, err := store.Insert(note{Text: "third"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)

	// Deleting a non-max id must not cause reuse.
	require.NoError(t, store.Remove(second.ID))
	fourth, err := store.Insert(note{Text: "fourth"})
	require.NoError(t, err)
	assert.Equal(t, 4, fourth.ID)

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].Text)
	assert.Equal(t, "third", records[1].Text)
	assert.Equal(t, "fourth", records[2].Text)
}

func TestUpdateUnknownIDFails(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Insert(note{Text: "only"})
	require.NoError(t, err)

	_, err = store.Update(99, func(n note) note { return n })
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateAppliesMutator(t *testing.T) {
	store, _ := newTestStore(t)
	inserted, err := store.Insert(note{Text: "before"})
	require.NoError(t, err)

	updated, err := store.Update(inserted.ID, func(n note) note {
		n.Text = "after"
		return n
	})
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, updated.ID)
	assert.Equal(t, "after", updated.Text)

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "after", records[0].Text)
}

func TestRemoveUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Insert(note{Text: "keep"})
	require.NoError(t, err)

	err = store.Remove(42)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "keep", records[0].Text)
}

func TestPersistedFormIsPrettyWithUnescapedSlashes(t *testing.T) {
	store, path := newTestStore(t)
	_, err := store.Insert(note{Text: "cut/color"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
	assert.Contains(t, string(data), `"cut/color"`)
	assert.NotContains(t, string(data), `\/`)
}

func TestConcurrentInsertsStayConsistent(t *testing.T) {
	store, _ := newTestStore(t)

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Insert(note{Text: strings.Repeat("x", 3)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, writers)

	seen := map[int]bool{}
	for _, r := range records {
		assert.False(t, seen[r.ID], "id %d assigned twice", r.ID)
		seen[r.ID] = true
	}
}
