package state

import (
	"context"
	"testing"
	"time"
)

func TestTickerSeedsAndStops(t *testing.T) {
	store := NewStore()
	ticker := NewTicker(store, "testdata/track.json")
	ticker.Interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		snap := store.Snapshot()
		if snap.Artist == "Test Artist" && snap.Release == "Test Release" {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("ticker never seeded store: %+v", snap)
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop on cancel")
	}
}

func TestTickerSeedMissingFile(t *testing.T) {
	store := NewStore()
	ticker := NewTicker(store, "testdata/does_not_exist.json")

	// Seeding from a missing file logs and leaves defaults in place.
	ticker.seed()
	if got := store.Snapshot().Artist; got != "—" {
		t.Fatalf("expected default artist, got %q", got)
	}
}
