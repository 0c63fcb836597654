package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "key", payload{Name: "fotogram"}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "key", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "fotogram", got.Name)
}

func TestGetJSONBadPayload(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("bad", "not-json"))

	var dest map[string]string
	found, err := GetJSON(ctx, "bad", &dest)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("feed:explore", "[]"))
	Invalidate(ctx, "feed:explore")
	assert.False(t, mr.Exists("feed:explore"))
}

func TestCacheAside(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *[]string) func() error {
		return func() error {
			calls++
			*dest = []string{"a", "b"}
			return nil
		}
	}

	var first []string
	hit, err := CacheAside(ctx, "list", &first, time.Minute, fetch(&first))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a", "b"}, first)
	assert.True(t, mr.Exists("list"))

	var second []string
	hit, err = CacheAside(ctx, "list", &second, time.Minute, fetch(&second))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, calls, "fetch must not run on a cache hit")
	assert.Equal(t, []string{"a", "b"}, second)
}

func TestCacheAsideSurvivesRedisOutage(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	// Redis dies after the client was established.
	mr.Close()

	calls := 0
	var got []string
	hit, err := CacheAside(ctx, "list", &got, time.Minute, func() error {
		calls++
		got = []string{"a"}
		return nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a"}, got)
}

func TestNilClientIsNoop(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, "k", struct{}{}, time.Minute))
	Invalidate(ctx, "k")
}
