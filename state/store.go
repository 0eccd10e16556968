// Package state holds the process-scoped simulated release, market and
// hurricane state behind a single lock.
package state

import (
	"math"
	"sync"

	"release-pulse/models"
)

// Store guards all shared mutable state. Handlers and the ticker must go
// through its methods; nothing reads the fields directly.
type Store struct {
	mu        sync.Mutex
	release   models.ReleaseState
	prevPrice *float64
	market    map[string]any
	hurricane []any
}

func NewStore() *Store {
	return &Store{
		release: models.ReleaseState{
			Artist:          "—",
			Release:         "—",
			ListingPressure: 0.10,
			Following: map[string]float64{
				"mainstream": 0.3,
				"tiktok":     0.3,
				"gallery":    0.2,
				"collectors": 0.15,
				"niche":      0.05,
			},
		},
		market:    map[string]any{},
		hurricane: []any{},
	}
}

// SeedRelease overwrites the release labels and following from a seed track.
// Empty fields keep their current values.
func (s *Store) SeedRelease(artist, release string, following map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if artist != "" {
		s.release.Artist = artist
	}
	if release != "" {
		s.release.Release = release
	}
	if len(following) > 0 {
		s.release.Following = following
	}
}

// Snapshot returns a copy of the release state safe to hand to encoders.
func (s *Store) Snapshot() models.ReleaseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.release
	out.Following = make(map[string]float64, len(s.release.Following))
	for k, v := range s.release.Following {
		out.Following[k] = v
	}
	if s.release.Floor != nil {
		f := *s.release.Floor
		out.Floor = &f
	}
	return out
}

// UpdateMarket replaces the in-memory market snapshot.
func (s *Store) UpdateMarket(market map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if market == nil {
		market = map[string]any{}
	}
	s.market = market
}

func (s *Store) Market() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.market))
	for k, v := range s.market {
		out[k] = v
	}
	return out
}

// ResetHurricane starts a fresh hurricane track.
func (s *Store) ResetHurricane() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hurricane = []any{}
}

func (s *Store) AppendHurricanePoint(p any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hurricane = append(s.hurricane, p)
}

func (s *Store) Hurricane() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]any, len(s.hurricane))
	copy(out, s.hurricane)
	return out
}

// decay drifts the simulated metrics toward their floors. Caller holds the lock.
func (s *Store) decay(dt float64) {
	s.release.Hype = math.Max(0, s.release.Hype-0.12*dt)
	s.release.Press = math.Max(0, s.release.Press-0.08*dt)
	s.release.Virality = math.Max(0, s.release.Virality-0.0015*dt)
	s.release.ListingPressure = math.Max(0.02, s.release.ListingPressure-0.004*dt)
}

// applyMarketInfluence heats the release metrics from the current market
// snapshot. Caller holds the lock.
func (s *Store) applyMarketInfluence() {
	bids := listLen(s.market["bid_list"])
	asks := listLen(s.market["ask_list"])

	var bidPressure float64
	switch {
	case asks > 0:
		bidPressure = float64(bids) / float64(asks)
	case bids > 0:
		bidPressure = 2.0
	}

	s.release.Hype += math.Min(2.0, 0.15*float64(bids))
	s.release.ListingPressure = math.Min(0.6, s.release.ListingPressure+0.02*bidPressure)

	// Crude floor inference from price momentum.
	price, ok := numeric(s.market["price"])
	if !ok {
		return
	}
	if s.prevPrice != nil {
		dp := price - *s.prevPrice
		base := price
		if s.release.Floor != nil && *s.release.Floor != 0 {
			base = *s.release.Floor
		}
		factor := 0.2
		if dp > 0 {
			factor = 0.4
		}
		floor := base + dp*factor
		s.release.Floor = &floor
	}
	prev := price
	s.prevPrice = &prev
}

func listLen(v any) int {
	list, ok := v.([]any)
	if !ok {
		return 0
	}
	return len(list)
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
