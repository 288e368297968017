package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisCache(mr.Addr())
	require.NoError(t, err)
	return c, mr
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, UserKey("daily_gratitude", "Sarah9012"), "value", ReadTTL))

	got, err := c.Get(ctx, UserKey("daily_gratitude", "Sarah9012"))
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestGetMissingKey(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background(), TableKey("daily_gratitude"))
	assert.Error(t, err)
}

func TestEntriesExpireAfterTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, TableKey("weekly_letters"), "rows", ReadTTL))

	mr.FastForward(ReadTTL + time.Second)

	_, err := c.Get(ctx, TableKey("weekly_letters"))
	assert.Error(t, err, "reads must not outlive the 60s window")
}

func TestJSONRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type row struct {
		Date string `json:"date"`
		G1   string `json:"g1"`
	}
	in := []row{{Date: "2024-06-03", G1: "tea"}}

	require.NoError(t, c.SetJSON(ctx, UserKey("daily_gratitude", "Sarah9012"), in, ReadTTL))

	var out []row
	require.NoError(t, c.GetJSON(ctx, UserKey("daily_gratitude", "Sarah9012"), &out))
	assert.Equal(t, in, out)
}

func TestInvalidateAllClearsEveryReadKey(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	keys := []string{
		TableKey("daily_gratitude"),
		TableKey("weekly_letters"),
		UserKey("daily_gratitude", "Sarah9012"),
		UserKey("weekly_letters", "Alex2331"),
	}
	for _, key := range keys {
		require.NoError(t, c.Set(ctx, key, "rows", ReadTTL))
	}

	require.NoError(t, c.InvalidateAll(ctx))

	for _, key := range keys {
		_, err := c.Get(ctx, key)
		assert.Error(t, err, "key %s should be gone after a write", key)
	}
}

func TestInvalidateAllOnEmptyCache(t *testing.T) {
	c, _ := newTestCache(t)
	assert.NoError(t, c.InvalidateAll(context.Background()))
}
