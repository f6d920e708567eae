package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type opportunityKeywordRepository interface {
	MatchingKeywords(ctx context.Context, keywords []string, limit int) ([]entities.Opportunity, error)
}

// CachedOpportunities memoizes keyword lookups; the dataset only changes on
// reseed, so a short TTL is plenty.
type CachedOpportunities struct {
	repo  opportunityKeywordRepository
	cache *gocache.Cache
}

func NewCachedOpportunities(repo opportunityKeywordRepository) *CachedOpportunities {
	return &CachedOpportunities{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c CachedOpportunities) MatchingKeywords(ctx context.Context, keywords []string, limit int) ([]entities.Opportunity, error) {
	key := strings.Join(keywords, "|")
	if value, found := c.cache.Get(key); found {
		return value.([]entities.Opportunity), nil
	}

	matching, err := c.repo.MatchingKeywords(ctx, keywords, limit)
	if err != nil {
		return nil, err
	}

	if err = c.cache.Add(key, matching, gocache.DefaultExpiration); err != nil {
		return matching, err
	}
	return matching, nil
}
