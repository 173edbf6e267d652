package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	key := ArtifactKey([]byte("flowchart TD\n  a(a)\n"), "svg")

	_, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, hit, "empty cache should miss")

	require.NoError(t, c.Set(ctx, key, []byte("<svg/>"), 0))

	data, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, []byte("<svg/>"), data)
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), -time.Second))

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, hit, "expired entry should miss")
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c.Delete(ctx, "k"))
	require.NoError(t, c.Delete(ctx, "k"), "deleting a missing key is not an error")

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, hit)
}

func TestNullCacheNeverStores(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, hit)
}

func TestArtifactKeyDeterministic(t *testing.T) {
	markup := []byte("flowchart TD\n  a --> b\n")

	require.Equal(t, ArtifactKey(markup, "svg"), ArtifactKey(markup, "svg"))
	require.NotEqual(t, ArtifactKey(markup, "svg"), ArtifactKey(markup, "png"),
		"format must be part of the key")
	require.NotEqual(t, ArtifactKey(markup, "svg"), ArtifactKey([]byte("flowchart LR\n"), "svg"),
		"markup must be part of the key")
}
