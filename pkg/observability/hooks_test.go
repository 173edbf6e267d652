package observability

import (
	"context"
	"testing"
	"time"
)

type recordingCacheHooks struct {
	hits, misses, sets int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)      { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string)     { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(context.Context, string, int) { r.sets++ }

type recordingRenderHooks struct {
	starts, completes int
}

func (r *recordingRenderHooks) OnRenderStart(context.Context, string) { r.starts++ }
func (r *recordingRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
	r.completes++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic
	ctx := context.Background()
	Render().OnRenderStart(ctx, "graphviz")
	Render().OnRenderComplete(ctx, "graphviz", 0, 0, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 100)
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 42)

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 1 {
		t.Errorf("hooks = %+v, want one of each", rec)
	}
}

func TestSetRenderHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingRenderHooks{}
	SetRenderHooks(rec)

	ctx := context.Background()
	Render().OnRenderStart(ctx, "kroki")
	Render().OnRenderComplete(ctx, "kroki", 10, time.Millisecond, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("hooks = %+v, want one start and one complete", rec)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)
	SetCacheHooks(nil)

	Cache().OnCacheHit(context.Background(), "artifact")
	if rec.hits != 1 {
		t.Error("nil registration should keep the existing hooks")
	}
}
