package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(id core.ID, content string) *core.ContextRecord {
	return &core.ContextRecord{
		Id:      id,
		Content: content,
		Date:    time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Type:    core.RecordTypeDiary,
	}
}

func TestGetOrSeed(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	t.Run("seeds demo corpus on first touch", func(t *testing.T) {
		records, err := store.GetOrSeed(ctx, "user1")
		require.NoError(t, err)
		assert.Len(t, records, 5)
	})

	t.Run("seeds only once", func(t *testing.T) {
		first, err := store.GetOrSeed(ctx, "user2")
		require.NoError(t, err)
		second, err := store.GetOrSeed(ctx, "user2")
		require.NoError(t, err)
		assert.Equal(t, len(first), len(second))
	})

	t.Run("rejects empty user ID", func(t *testing.T) {
		_, err := store.GetOrSeed(ctx, "")
		assert.Equal(t, storage.ErrEmptyUserID, err)
	})
}

func TestGetOrSeed_Concurrent(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	results := make([][]*core.ContextRecord, 10)
	errs := make([]error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.GetOrSeed(ctx, "shared-user")
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 5)
	}
}

func TestGetOrSeed_ReturnsCopies(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	first, err := store.GetOrSeed(ctx, "user1")
	require.NoError(t, err)

	first[0].Content = "mutated"

	second, err := store.GetOrSeed(ctx, "user1")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Content)
}

func TestGetOrSeed_CustomSeed(t *testing.T) {
	store, err := NewStore(WithSeed(func() []*core.ContextRecord {
		return nil
	}))
	require.NoError(t, err)
	defer store.Close()

	records, err := store.GetOrSeed(context.Background(), "user1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("does not seed unknown users", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)
		defer store.Close()

		added, err := store.Append(ctx, "newuser", newTestRecord("a", "entry"))
		require.NoError(t, err)
		require.Len(t, added, 1)

		records, err := store.GetOrSeed(ctx, "newuser")
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("generates ID when empty", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)
		defer store.Close()

		added, err := store.Append(ctx, "user1", newTestRecord("", "entry"))
		require.NoError(t, err)
		require.Len(t, added, 1)
		assert.NotEmpty(t, added[0].Id)
		assert.False(t, added[0].InsertedAt.IsZero())
	})

	t.Run("rejects duplicate ID", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Append(ctx, "user1", newTestRecord("dup", "first"))
		require.NoError(t, err)
		_, err = store.Append(ctx, "user1", newTestRecord("dup", "second"))
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)
	})

	t.Run("rejects empty user ID", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Append(ctx, "", newTestRecord("a", "entry"))
		assert.Equal(t, storage.ErrEmptyUserID, err)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces existing record", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Append(ctx, "user1", newTestRecord("a", "original"))
		require.NoError(t, err)

		updated := newTestRecord("a", "updated")
		updated.Embedding = []float32{0.1, 0.2}
		require.NoError(t, store.Update(ctx, "user1", updated))

		got, err := store.Get(ctx, "user1", "a")
		require.NoError(t, err)
		assert.Equal(t, "updated", got.Content)
		assert.Equal(t, []float32{0.1, 0.2}, got.Embedding)
		assert.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("unknown record", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Append(ctx, "user1", newTestRecord("a", "entry"))
		require.NoError(t, err)

		err = store.Update(ctx, "user1", newTestRecord("missing", "x"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)
		defer store.Close()

		err = store.Update(ctx, "ghost", newTestRecord("a", "x"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("validates all IDs before mutating", func(t *testing.T) {
		store, err := NewStore()
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Append(ctx, "user1", newTestRecord("a", "original"))
		require.NoError(t, err)

		err = store.Update(ctx, "user1",
			newTestRecord("a", "changed"), newTestRecord("missing", "x"))
		require.ErrorIs(t, err, storage.ErrNotFound)

		got, err := store.Get(ctx, "user1", "a")
		require.NoError(t, err)
		assert.Equal(t, "original", got.Content)
	})
}

func TestGet(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	_, err = store.Append(ctx, "user1", newTestRecord("a", "entry"))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := store.Get(ctx, "user1", "a")
		require.NoError(t, err)
		assert.Equal(t, "entry", got.Content)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.Get(ctx, "user1", "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUsers(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	_, err = store.GetOrSeed(ctx, "bob")
	require.NoError(t, err)
	_, err = store.GetOrSeed(ctx, "alice")
	require.NoError(t, err)

	users, err := store.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users)
}

func TestClose(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err = store.GetOrSeed(ctx, "user1")
	assert.True(t, errors.Is(err, storage.ErrStorageClosed))

	_, err = store.Append(ctx, "user1", newTestRecord("a", "entry"))
	assert.True(t, errors.Is(err, storage.ErrStorageClosed))

	_, err = store.Users(ctx)
	assert.True(t, errors.Is(err, storage.ErrStorageClosed))
}
