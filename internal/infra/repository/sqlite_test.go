package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newTestRepository(t *testing.T) (*SQLiteNoteRepository, *stepClock) {
	t.Helper()
	clock := &stepClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	repo := NewSQLiteNoteRepository(filepath.Join(t.TempDir(), "notes.db")).WithClock(clock.now)
	require.NoError(t, repo.Init(context.Background()))
	return repo, clock
}

func TestInitIsIdempotent(t *testing.T) {
	repo, _ := newTestRepository(t)
	require.NoError(t, repo.Init(context.Background()))
	require.NoError(t, repo.Init(context.Background()))
}

func TestSaveAndGetAllNotesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.SaveNote(ctx, "user-1", "A"))
	require.NoError(t, repo.SaveNote(ctx, "user-1", "B"))
	require.NoError(t, repo.SaveNote(ctx, "user-2", "other"))

	notes, err := repo.GetAllNotes(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, notes, 2)

	assert.Equal(t, "B", notes[0].Content)
	assert.Equal(t, "A", notes[1].Content)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 2, 0, 0, time.UTC), notes[0].CreatedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 1, 0, 0, time.UTC), notes[1].CreatedAt)
	assert.True(t, notes[0].CreatedAt.After(notes[1].CreatedAt))
	for _, n := range notes {
		assert.Equal(t, "user-1", n.UserID)
		assert.NotZero(t, n.ID)
	}
}

func TestGetNotesRespectsLimit(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	for _, c := range []string{"one", "two", "three", "four"} {
		require.NoError(t, repo.SaveNote(ctx, "user-1", c))
	}

	notes, err := repo.GetNotes(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "four", notes[0].Content)
	assert.Equal(t, "three", notes[1].Content)

	notes, err = repo.GetNotes(ctx, "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, notes, 4)
}

func TestSameSecondKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := NewSQLiteNoteRepository(filepath.Join(t.TempDir(), "notes.db")).
		WithClock(func() time.Time { return fixed })
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, repo.SaveNote(ctx, "u", "first"))
	require.NoError(t, repo.SaveNote(ctx, "u", "second"))
	require.NoError(t, repo.SaveNote(ctx, "u", "second"))

	notes, err := repo.GetAllNotes(ctx, "u")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "second", notes[0].Content)
	assert.Equal(t, "second", notes[1].Content)
	assert.Equal(t, "first", notes[2].Content)
}

func TestGetAllNotesEmpty(t *testing.T) {
	repo, _ := newTestRepository(t)

	notes, err := repo.GetAllNotes(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestStorageErrorOnUnreachableDatabase(t *testing.T) {
	repo := NewSQLiteNoteRepository(filepath.Join(t.TempDir(), "missing-dir", "notes.db"))

	err := repo.SaveNote(context.Background(), "u", "text")
	require.Error(t, err)

	var storageErr *StorageError
	assert.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "save note", storageErr.Op)
}
