package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("working")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.Cancelled() != true {
		// Stop cancels the internal context
		t.Error("Cancelled() should be true after Stop")
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	// Stop before any frame renders must not hang
	s := newSpinner("idle")
	s.Start()
	s.Stop()
}

func TestSpinnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "cancellable")
	s.Start()

	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Cancelled() should be true after context cancellation")
	}
	s.Stop()
}

func TestSpinnerSetMessage(t *testing.T) {
	s := newSpinner("first")
	s.Start()
	s.SetMessage("second longer message")
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.message != "second longer message" {
		t.Errorf("message = %q", s.message)
	}
}
