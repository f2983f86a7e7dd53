package wizard

import (
	"context"
	"testing"
	"time"

	"legal_wizard_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	var created []string
	store := NewStore(func(id string) *Controller {
		created = append(created, id)
		return New(Config{})
	})

	t.Run("Create and Get", func(t *testing.T) {
		id, ctrl := store.Create()
		assert.NotEmpty(t, id)
		assert.Contains(t, created, id)

		got, ok := store.Get(id)
		require.True(t, ok)
		assert.Same(t, ctrl, got)
	})

	t.Run("GetOrCreate reuses known ids", func(t *testing.T) {
		id, ctrl := store.Create()
		gotID, got, isNew := store.GetOrCreate(id)
		assert.False(t, isNew)
		assert.Equal(t, id, gotID)
		assert.Same(t, ctrl, got)
	})

	t.Run("GetOrCreate replaces unknown ids", func(t *testing.T) {
		gotID, got, isNew := store.GetOrCreate("not-a-session")
		assert.True(t, isNew)
		assert.NotEqual(t, "not-a-session", gotID)
		assert.NotNil(t, got)

		_, _, isNew = store.GetOrCreate("")
		assert.True(t, isNew)
	})

	t.Run("Delete", func(t *testing.T) {
		id, _ := store.Create()
		store.Delete(id)
		_, ok := store.Get(id)
		assert.False(t, ok)
	})
}

func TestStoreSweep(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(func(id string) *Controller { return New(Config{}) })
	store.now = func() time.Time { return now }

	staleID, _ := store.Create()
	now = now.Add(45 * time.Minute)
	freshID, _ := store.Create()

	// Busy sessions survive even when stale
	entered := make(chan struct{})
	release := make(chan struct{})
	busy := New(Config{Extractor: blockingExtractor(entered, release, models.FormData{}, nil)})
	store.mu.Lock()
	store.sessions["busy"] = &session{controller: busy, lastSeen: now.Add(-time.Hour)}
	store.mu.Unlock()
	require.NoError(t, busy.SelectDocuments(nil))
	done := make(chan error, 1)
	go func() { done <- busy.SubmitFile(context.Background(), testFile("x.pdf")) }()
	<-entered

	removed := store.Sweep(30 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, store.Len())

	_, ok := store.Get(staleID)
	assert.False(t, ok)
	_, ok = store.Get(freshID)
	assert.True(t, ok)
	_, ok = store.Get("busy")
	assert.True(t, ok)

	close(release)
	assert.NoError(t, <-done)
}
