package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/physics"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testItem(id string) content.Item {
	return content.Item{
		ID:       id,
		Type:     content.TypeReview,
		Title:    "Modernist Failures",
		Subtitle: "Architecture Review",
		Content:  "Why do we crave sterile spaces?",
		Rating:   4,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.UnixMilli(1_700_000_000_000)

	require.NoError(t, s.SavePublished(ctx, testItem("a"), at))

	e, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, testItem("a"), e.Item)
	assert.True(t, e.Published)
	assert.False(t, e.Archived)
	assert.True(t, at.Equal(e.StoredAt))
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ArchiveKeepsPublishedFlag(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.SavePublished(ctx, testItem("a"), now))
	require.NoError(t, s.Archive(ctx, testItem("a"), now))
	require.NoError(t, s.Archive(ctx, testItem("seed"), now))

	e, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, e.Published)
	assert.True(t, e.Archived)

	archived, err := s.List(ctx, FilterArchived)
	require.NoError(t, err)
	assert.Len(t, archived, 2)

	published, err := s.PublishedItems(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "a", published[0].ID)

	all, err := s.List(ctx, FilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_ListOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.UnixMilli(1_000)

	require.NoError(t, s.SavePublished(ctx, testItem("late"), base.Add(time.Second)))
	require.NoError(t, s.SavePublished(ctx, testItem("early"), base))

	entries, err := s.List(ctx, FilterPublished)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "early", entries[0].Item.ID)
	assert.Equal(t, "late", entries[1].Item.ID)
}

func TestStore_RejectsEmptyID(t *testing.T) {
	s := openTestStore(t)
	err := s.SavePublished(context.Background(), testItem(""), time.Now())
	assert.ErrorIs(t, err, content.ErrInvalidItem)
}

func TestStore_ReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SavePublished(context.Background(), testItem("a"), time.Now()))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	items, err := s.PublishedItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestRecorder_StoresPublished(t *testing.T) {
	s := openTestStore(t)
	r := NewRecorder(s, nil)

	r.OnPublish(physics.Node{ID: "a"}, testItem("a"))
	r.OnOpen(testItem("a"))

	e, err := s.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, e.Published)
}
