package state

import (
	"context"
	"log"
	"math"
	"math/rand"
	"time"

	"release-pulse/models"
)

// Ticker simulates ongoing creative and market activity: once per second it
// applies decay and market influence to the store and rolls one random
// micro-event.
type Ticker struct {
	Store    *Store
	SeedPath string
	Interval time.Duration

	rng *rand.Rand
}

func NewTicker(store *Store, seedPath string) *Ticker {
	return &Ticker{
		Store:    store,
		SeedPath: seedPath,
		Interval: time.Second,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run seeds the store from the track file once, then ticks until ctx is done.
func (t *Ticker) Run(ctx context.Context) {
	t.seed()

	tick := time.NewTicker(t.Interval)
	defer tick.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tick.C:
			dt := math.Max(0.2, now.Sub(last).Seconds())
			t.Store.Tick(dt, t.rng)
			last = now
		}
	}
}

func (t *Ticker) seed() {
	track, err := models.LoadTrack(t.SeedPath)
	if err != nil {
		log.Printf("release seed load error: %v", err)
		return
	}
	t.Store.SeedRelease(track.Artist, track.Release, track.Following)
}

// Tick advances the simulation by dt seconds.
func (s *Store) Tick(dt float64, rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decay(dt)
	s.applyMarketInfluence()
	s.fireMicroEvent(rng)
}

// fireMicroEvent rolls one of six mutually exclusive random events.
// Caller holds the lock.
func (s *Store) fireMicroEvent(rng *rand.Rand) {
	roll := rng.Float64()
	switch {
	case roll < 0.20:
		s.release.Event = "platform_boost"
		s.release.Virality = math.Min(1.0, s.release.Virality+0.03+rng.Float64()*0.04)
	case roll < 0.38:
		s.release.Event = "collab_reveal"
		s.release.Hype += 6 + rng.Float64()*8
	case roll < 0.54:
		s.release.Event = "critic_preview"
		s.release.Press += 6 + rng.Float64()*6
	case roll < 0.64:
		s.release.Event = "record_sale"
		s.release.ListingPressure = math.Min(0.6, s.release.ListingPressure+0.05)
		base := 100.0
		if s.release.Floor != nil && *s.release.Floor != 0 {
			base = *s.release.Floor
		}
		floor := base + 4 + rng.Float64()*12
		s.release.Floor = &floor
	case roll < 0.82:
		s.release.Event = "teaser"
		s.release.Hype += 3 + rng.Float64()*4
	default:
		s.release.Event = "" // idle
	}
}
