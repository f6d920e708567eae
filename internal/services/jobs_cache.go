package services

import (
	"sync"
	"time"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
)

// JobsCache holds aggregated postings per category for a bounded window.
// The clock is injected so expiry is testable without real delays. Entries
// are replaced wholesale; concurrent refreshes of the same stale category
// are last-write-wins.
type JobsCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]jobsCacheEntry
}

type jobsCacheEntry struct {
	jobs         []entities.ScrapedJob
	scrapedCount int
	staticCount  int
	timestamp    time.Time
}

func NewJobsCache(ttl time.Duration, now func() time.Time) *JobsCache {
	if now == nil {
		now = time.Now
	}
	return &JobsCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]jobsCacheEntry),
	}
}

func (c *JobsCache) Now() time.Time {
	return c.now()
}

// Get returns the cached result for a category, treating expired entries as
// absent.
func (c *JobsCache) Get(category string) (jobs []entities.ScrapedJob, scrapedCount, staticCount int, timestamp time.Time, found bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[category]
	if !ok || c.expired(entry) {
		return nil, 0, 0, time.Time{}, false
	}
	return entry.jobs, entry.scrapedCount, entry.staticCount, entry.timestamp, true
}

func (c *JobsCache) Set(category string, jobs []entities.ScrapedJob, scrapedCount, staticCount int) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	timestamp := c.now()
	c.entries[category] = jobsCacheEntry{
		jobs:         jobs,
		scrapedCount: scrapedCount,
		staticCount:  staticCount,
		timestamp:    timestamp,
	}
	return timestamp
}

// PurgeExpired drops stale entries and reports how many were removed. The
// cache works correctly without it; the janitor calls it to bound memory.
func (c *JobsCache) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for category, entry := range c.entries {
		if c.expired(entry) {
			delete(c.entries, category)
			removed++
		}
	}
	return removed
}

func (c *JobsCache) expired(entry jobsCacheEntry) bool {
	return c.now().Sub(entry.timestamp) >= c.ttl
}
