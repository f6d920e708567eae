package tests

import (
	"context"
	"sync"
	"time"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
)

type mockBoard struct {
	name    string
	results []entities.ScrapedJob
	err     error

	mu    sync.Mutex
	calls int
}

func (b *mockBoard) Name() string {
	return b.name
}

func (b *mockBoard) Search(_ context.Context, _ string) ([]entities.ScrapedJob, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()

	if b.err != nil {
		return nil, b.err
	}
	return b.results, nil
}

func (b *mockBoard) searchCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

type fakeClock struct {
	mu      sync.Mutex
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}
