package boards

import (
	"context"
	"time"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// CachedBoard keeps successful per-keyword results for a short window so a
// burst of requests for overlapping categories does not hammer the board.
type CachedBoard struct {
	board Board
	cache *gocache.Cache
}

func NewCachedBoard(board Board) *CachedBoard {
	return &CachedBoard{board: board, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedBoard) Name() string {
	return c.board.Name()
}

func (c *CachedBoard) Search(ctx context.Context, keyword string) ([]entities.ScrapedJob, error) {
	key := c.board.Name() + ":" + keyword
	if value, found := c.cache.Get(key); found {
		return value.([]entities.ScrapedJob), nil
	}

	jobs, err := c.board.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	if cacheErr := c.cache.Add(key, jobs, gocache.DefaultExpiration); cacheErr != nil {
		log.Errorf("failed to cache board results: %v", cacheErr)
	}
	return jobs, nil
}
