package cache

import (
	"context"
	"time"

	"dream/internal/logger"
)

// Cleaner is a cache that can drop its expired entries.
type Cleaner interface {
	CleanExpired() int
}

// Janitor periodically cleans registered caches.
type Janitor struct {
	caches   []Cleaner
	interval time.Duration
}

// NewJanitor creates a janitor running every interval.
func NewJanitor(interval time.Duration, caches ...Cleaner) *Janitor {
	return &Janitor{caches: caches, interval: interval}
}

// Run cleans until ctx is done. It always returns nil so it can sit in an
// errgroup next to the server.
func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := j.Sweep(); n > 0 {
				logger.Get().Debugw("expired cache entries removed", "count", n)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// Sweep cleans every cache once and returns the number of removed entries.
func (j *Janitor) Sweep() int {
	total := 0
	for _, c := range j.caches {
		total += c.CleanExpired()
	}
	return total
}
