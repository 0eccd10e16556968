// Package feed pulls market snapshots from an optional upstream endpoint
// into the shared store.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"release-pulse/state"
)

// Poller periodically fetches a market snapshot JSON object and replaces the
// store's in-memory market state with it. Fetch failures are logged and the
// previous snapshot stays in place.
type Poller struct {
	URL      string
	Interval time.Duration
	Store    *state.Store

	client *http.Client
}

func NewPoller(url string, store *state.Store) *Poller {
	return &Poller{
		URL:      url,
		Interval: 5 * time.Second,
		Store:    store,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *Poller) Run(ctx context.Context) {
	tick := time.NewTicker(p.Interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := p.poll(ctx); err != nil {
				log.Println("market feed:", err)
			}
		}
	}
}

func (p *Poller) poll(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("market feed error: %s", string(body))
	}

	var snapshot map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return err
	}

	p.Store.UpdateMarket(snapshot)
	return nil
}
