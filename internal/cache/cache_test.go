package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFetch(values []string, calls *int) func(ctx context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		*calls++
		return values, nil
	}
}

func TestReadCachesUntilInvalidated(t *testing.T) {
	s := New(0)
	ctx := context.Background()
	var calls int
	fetch := countingFetch([]string{"a", "b"}, &calls)

	first, err := Read(ctx, s, "budget", fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first)

	_, err = Read(ctx, s, "budget", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second read must come from cache")

	s.Invalidate("budget")
	_, err = Read(ctx, s, "budget", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "read after invalidation must refetch")
}

func TestInvalidateIsPerTag(t *testing.T) {
	s := New(0)
	ctx := context.Background()
	var budgetCalls, packingCalls int

	_, err := Read(ctx, s, "budget", countingFetch([]string{"b"}, &budgetCalls))
	require.NoError(t, err)
	_, err = Read(ctx, s, "packing", countingFetch([]string{"p"}, &packingCalls))
	require.NoError(t, err)

	s.Invalidate("budget")

	_, err = Read(ctx, s, "budget", countingFetch([]string{"b"}, &budgetCalls))
	require.NoError(t, err)
	_, err = Read(ctx, s, "packing", countingFetch([]string{"p"}, &packingCalls))
	require.NoError(t, err)

	assert.Equal(t, 2, budgetCalls)
	assert.Equal(t, 1, packingCalls, "invalidating budget must not touch packing")
}

func TestFetchErrorIsNotCached(t *testing.T) {
	s := New(0)
	ctx := context.Background()
	boom := errors.New("network down")
	calls := 0

	_, err := Read(ctx, s, "posts", func(ctx context.Context) ([]string, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return []string{"ok"}, nil
	})
	assert.ErrorIs(t, err, boom)

	items, err := Read(ctx, s, "posts", func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"ok"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, items)
	assert.Equal(t, 2, calls)
}

func TestTTLExpiry(t *testing.T) {
	s := New(10 * time.Millisecond)
	ctx := context.Background()
	var calls int
	fetch := countingFetch([]string{"x"}, &calls)

	_, err := Read(ctx, s, "culinary", fetch)
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, err = Read(ctx, s, "culinary", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "stale entry must refetch")
}

func TestMismatchedTagType(t *testing.T) {
	s := New(0)
	ctx := context.Background()

	_, err := Read(ctx, s, "tag", func(ctx context.Context) ([]string, error) {
		return []string{"a"}, nil
	})
	require.NoError(t, err)

	_, err = Read(ctx, s, "tag", func(ctx context.Context) ([]int, error) {
		return []int{1}, nil
	})
	assert.Error(t, err)
}
