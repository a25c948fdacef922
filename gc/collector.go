package gc

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tchecker-go/tchecker/arena"
)

// Collector runs one background goroutine that round-robins Sweep across
// every enrolled pool, once per interval (spec.md §4.5 "a single
// background collection thread ... runs enrolled callbacks in
// round-robin").
type Collector struct {
	mu       sync.Mutex
	pools    []arena.Sweeper
	interval time.Duration

	g      *errgroup.Group
	cancel context.CancelFunc
}

// New builds a Collector that sweeps one enrolled pool every interval
// while running.
func New(interval time.Duration) *Collector {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Collector{interval: interval}
}

// Enroll registers p for round-robin sweeping. Safe to call whether or
// not the collector is currently running.
func (c *Collector) Enroll(p arena.Sweeper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pools = append(c.pools, p)
}

// Start launches the background goroutine. Calling Start while already
// running is a no-op.
func (c *Collector) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	g, ctx := errgroup.WithContext(ctx)
	c.g = g
	g.Go(func() error {
		c.run(ctx)
		return nil
	})
}

// run is the round-robin sweep loop; it owns no lock while sweeping so
// Enroll can be called concurrently with a running collector.
func (c *Collector) run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	next := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			n := len(c.pools)
			if n == 0 {
				c.mu.Unlock()
				continue
			}
			p := c.pools[next%n]
			next++
			c.mu.Unlock()
			p.Sweep()
		}
	}
}

// Stop signals the background goroutine to exit and waits for it.
// Callers must Stop before destroying any enrolled pool (spec.md §4.5).
func (c *Collector) Stop() error {
	c.mu.Lock()
	cancel := c.cancel
	g := c.g
	c.cancel = nil
	c.g = nil
	c.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	return g.Wait()
}
