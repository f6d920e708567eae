package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pathfinder-eg/pathfinder/internal/clients/boards"
	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pathfinder-eg/pathfinder/internal/events"
	"github.com/pathfinder-eg/pathfinder/internal/logger"
	"github.com/pathfinder-eg/pathfinder/internal/metrics"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidCategory = errors.New("unknown job category")

const staticFallbackLimit = 10

const (
	SourceCache = "cache"
	SourceLive  = "live"
)

type JobsResult struct {
	Jobs         []entities.ScrapedJob
	Source       string
	ScrapedCount int
	StaticCount  int
	Timestamp    time.Time
}

type opportunityMatcher interface {
	MatchingKeywords(ctx context.Context, keywords []string, limit int) ([]entities.Opportunity, error)
}

// JobAggregator combines live board results with the static dataset and
// caches the merged list per category.
type JobAggregator struct {
	boards        []boards.Board
	opportunities opportunityMatcher
	cache         *JobsCache
	bus           EventBus.Bus
}

func NewJobAggregator(bus EventBus.Bus, boardList []boards.Board,
	opportunities opportunityMatcher, cache *JobsCache) *JobAggregator {

	return &JobAggregator{
		boards:        boardList,
		opportunities: opportunities,
		cache:         cache,
		bus:           bus,
	}
}

// GetJobs returns postings for a category, serving from cache inside the TTL
// window. An unknown category fails with ErrInvalidCategory; board outages
// degrade to static-only results and are never surfaced to the caller.
func (a *JobAggregator) GetJobs(ctx context.Context, categoryID string) (*JobsResult, error) {

	if jobs, scrapedCount, staticCount, timestamp, found := a.cache.Get(categoryID); found {
		metrics.JobsCacheEvents.WithLabelValues("hit").Inc()
		return &JobsResult{
			Jobs:         jobs,
			Source:       SourceCache,
			ScrapedCount: scrapedCount,
			StaticCount:  staticCount,
			Timestamp:    timestamp,
		}, nil
	}
	metrics.JobsCacheEvents.WithLabelValues("miss").Inc()

	keywords := KeywordsForCategory(categoryID)
	if len(keywords) == 0 {
		return nil, errors.Wrapf(ErrInvalidCategory, "category %q", categoryID)
	}

	start := time.Now()
	live := a.scrapeAll(ctx, keywords)
	metrics.AggregationDuration.Observe(time.Since(start).Seconds())

	static := a.staticFallback(ctx, keywords)

	jobs := append(live, static...)
	timestamp := a.cache.Set(categoryID, jobs, len(live), len(static))

	a.bus.Publish(events.JobsFetchedTopic, events.JobsFetched{
		Category:     categoryID,
		ScrapedCount: len(live),
		StaticCount:  len(static),
		FetchedAt:    timestamp,
	})

	return &JobsResult{
		Jobs:         jobs,
		Source:       SourceLive,
		ScrapedCount: len(live),
		StaticCount:  len(static),
		Timestamp:    timestamp,
	}, nil
}

// scrapeAll fans out one query per (keyword, board) pair and collects every
// result, ignoring per-query failures. Result order is deterministic:
// keyword-major, then board order.
func (a *JobAggregator) scrapeAll(ctx context.Context, keywords []string) []entities.ScrapedJob {

	type query struct {
		keyword string
		board   boards.Board
	}

	var queries []query
	for _, keyword := range keywords {
		for _, board := range a.boards {
			queries = append(queries, query{keyword: keyword, board: board})
		}
	}

	results := make([][]entities.ScrapedJob, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q query) {
			defer wg.Done()

			start := time.Now()
			jobs, err := q.board.Search(ctx, q.keyword)
			metrics.BoardSearchDuration.WithLabelValues(q.board.Name()).Observe(time.Since(start).Seconds())

			if err != nil {
				metrics.BoardFailuresCounter.WithLabelValues(q.board.Name()).Inc()
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeBoardAPI).
					Errorf("failed to search %v for %q: %v", q.board.Name(), q.keyword, err)
				return
			}
			results[i] = jobs
		}(i, q)
	}
	wg.Wait()

	merged := lo.Flatten(results)
	return lo.UniqBy(merged, func(job entities.ScrapedJob) string {
		return job.Title + "\x00" + job.Company
	})
}

func (a *JobAggregator) staticFallback(ctx context.Context, keywords []string) []entities.ScrapedJob {

	matching, err := a.opportunities.MatchingKeywords(ctx, keywords, staticFallbackLimit)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load static fallback: %v", err)
		return nil
	}

	return lo.Map(matching, func(opportunity entities.Opportunity, _ int) entities.ScrapedJob {
		url := opportunity.ApplicationURL
		if url == "" {
			url = "#"
		}
		return entities.ScrapedJob{
			Title:       opportunity.Title,
			Company:     opportunity.Organization,
			Location:    opportunity.Location,
			Source:      "PathFinder Database",
			URL:         url,
			SalaryRange: formatSalaryRange(opportunity),
		}
	})
}

func formatSalaryRange(opportunity entities.Opportunity) string {
	if opportunity.SalaryMin == 0 && opportunity.SalaryMax == 0 {
		return ""
	}
	return strconv.Itoa(opportunity.SalaryMin) + " - " + strconv.Itoa(opportunity.SalaryMax) + " " + opportunity.SalaryCurrency
}
