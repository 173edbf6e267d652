package render

import (
	"context"
	"time"

	"github.com/flowmark/flowmark/pkg/cache"
	"github.com/flowmark/flowmark/pkg/observability"
)

// Cached wraps a Renderer with artifact caching keyed on the markup
// text. Cache failures degrade to rendering; they are never fatal.
type Cached struct {
	inner Renderer
	cache cache.Cache
	ttl   time.Duration
}

// WithCache wraps inner so rendered artifacts are stored in c for ttl.
func WithCache(inner Renderer, c cache.Cache, ttl time.Duration) *Cached {
	return &Cached{inner: inner, cache: c, ttl: ttl}
}

// Render returns the cached artifact when present, rendering and storing
// it otherwise.
func (r *Cached) Render(ctx context.Context, markup string) ([]byte, error) {
	data, _, err := r.RenderWithInfo(ctx, markup)
	return data, err
}

// RenderWithInfo is Render plus a flag reporting whether the artifact
// came from the cache.
func (r *Cached) RenderWithInfo(ctx context.Context, markup string) ([]byte, bool, error) {
	key := cache.ArtifactKey([]byte(markup), FormatSVG)

	if data, hit, err := r.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	data, err := r.inner.Render(ctx, markup)
	if err != nil {
		return nil, false, err
	}

	if err := r.cache.Set(ctx, key, data, r.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Ensure Cached implements Renderer.
var _ Renderer = (*Cached)(nil)
