package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pathfinder-eg/pathfinder/internal/clients/boards"
	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type stubBoard struct {
	name    string
	results map[string][]entities.ScrapedJob
	err     error

	mu    sync.Mutex
	calls int
}

func (b *stubBoard) Name() string {
	return b.name
}

func (b *stubBoard) Search(_ context.Context, keyword string) ([]entities.ScrapedJob, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()

	if b.err != nil {
		return nil, b.err
	}
	return b.results[keyword], nil
}

func (b *stubBoard) searchCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

type stubMatcher struct {
	opportunities []entities.Opportunity
	err           error
}

func (m *stubMatcher) MatchingKeywords(_ context.Context, _ []string, limit int) ([]entities.Opportunity, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.opportunities) > limit {
		return m.opportunities[:limit], nil
	}
	return m.opportunities, nil
}

func newTestAggregator(boardList []boards.Board, matcher opportunityMatcher,
	clock *fakeClock) *JobAggregator {
	cache := NewJobsCache(15*time.Minute, clock.Now)
	return NewJobAggregator(EventBus.New(), boardList, matcher, cache)
}

func Test_GetJobs_WithUnknownCategory_ShouldFail(t *testing.T) {

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	aggregator := newTestAggregator(nil, &stubMatcher{}, clock)

	_, err := aggregator.GetJobs(context.Background(), "astrology")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func Test_GetJobs_MergesLiveAndStaticResults(t *testing.T) {

	board := &stubBoard{
		name: "Wuzzuf",
		results: map[string][]entities.ScrapedJob{
			"physiotherapist": {{Title: "Physiotherapist", Company: "Cairo Clinic", Source: "Wuzzuf"}},
		},
	}
	matcher := &stubMatcher{opportunities: []entities.Opportunity{
		{Title: "Rehabilitation Specialist", Organization: "Nile Hospital", Location: "Giza, Egypt"},
	}}

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	aggregator := newTestAggregator([]boards.Board{board}, matcher, clock)

	result, err := aggregator.GetJobs(context.Background(), "rehabilitation")
	assert.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)
	assert.Equal(t, 1, result.ScrapedCount)
	assert.Equal(t, 1, result.StaticCount)
	assert.Len(t, result.Jobs, 2)

	assert.Equal(t, "Physiotherapist", result.Jobs[0].Title)
	assert.Equal(t, "Rehabilitation Specialist", result.Jobs[1].Title)
	assert.Equal(t, "PathFinder Database", result.Jobs[1].Source)
	assert.Equal(t, "#", result.Jobs[1].URL)
}

func Test_GetJobs_SecondCallInsideTtl_ShouldServeFromCache(t *testing.T) {

	board := &stubBoard{
		name: "Wuzzuf",
		results: map[string][]entities.ScrapedJob{
			"physiotherapist": {{Title: "Physiotherapist", Company: "Cairo Clinic"}},
		},
	}

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	aggregator := newTestAggregator([]boards.Board{board}, &stubMatcher{}, clock)

	first, err := aggregator.GetJobs(context.Background(), "rehabilitation")
	assert.NoError(t, err)

	clock.Advance(5 * time.Minute)

	second, err := aggregator.GetJobs(context.Background(), "rehabilitation")
	assert.NoError(t, err)
	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, first.Jobs, second.Jobs)
	assert.Equal(t, first.ScrapedCount, second.ScrapedCount)
	assert.Equal(t, first.Timestamp, second.Timestamp)

	queriesPerFetch := len(KeywordsForCategory("rehabilitation"))
	assert.Equal(t, queriesPerFetch, board.searchCount())
}

func Test_GetJobs_AfterTtlElapsed_ShouldScrapeAgain(t *testing.T) {

	board := &stubBoard{name: "Wuzzuf", results: map[string][]entities.ScrapedJob{}}

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	aggregator := newTestAggregator([]boards.Board{board}, &stubMatcher{}, clock)

	_, err := aggregator.GetJobs(context.Background(), "rehabilitation")
	assert.NoError(t, err)

	clock.Advance(15 * time.Minute)

	result, err := aggregator.GetJobs(context.Background(), "rehabilitation")
	assert.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)

	queriesPerFetch := len(KeywordsForCategory("rehabilitation"))
	assert.Equal(t, 2*queriesPerFetch, board.searchCount())
}

func Test_GetJobs_WhenEveryBoardFails_ShouldReturnStaticOnly(t *testing.T) {

	failing := &stubBoard{name: "Wuzzuf", err: errors.New("connection refused")}
	matcher := &stubMatcher{opportunities: []entities.Opportunity{
		{Title: "Physiotherapist", Organization: "Nile Hospital"},
	}}

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	aggregator := newTestAggregator([]boards.Board{failing}, matcher, clock)

	result, err := aggregator.GetJobs(context.Background(), "rehabilitation")
	assert.NoError(t, err)
	assert.Equal(t, 0, result.ScrapedCount)
	assert.Equal(t, 1, result.StaticCount)
	assert.Len(t, result.Jobs, 1)
}

func Test_GetJobs_DeduplicatesByTitleAndCompany(t *testing.T) {

	first := &stubBoard{
		name: "Wuzzuf",
		results: map[string][]entities.ScrapedJob{
			"physiotherapist": {{Title: "Physiotherapist", Company: "Cairo Clinic", URL: "https://wuzzuf.net/jobs/1"}},
		},
	}
	second := &stubBoard{
		name: "Forasna",
		results: map[string][]entities.ScrapedJob{
			"physiotherapist": {
				{Title: "Physiotherapist", Company: "Cairo Clinic", URL: "https://forasna.com/jobs/9"},
				{Title: "Physiotherapist", Company: "Giza Center", URL: "https://forasna.com/jobs/10"},
			},
		},
	}

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	aggregator := newTestAggregator([]boards.Board{first, second}, &stubMatcher{}, clock)

	result, err := aggregator.GetJobs(context.Background(), "rehabilitation")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(result.Jobs))

	// first board in the list wins on duplicates
	assert.Equal(t, "https://wuzzuf.net/jobs/1", result.Jobs[0].URL)
	assert.Equal(t, "Giza Center", result.Jobs[1].Company)
}

func Test_GetJobs_WhenStaticLookupFails_ShouldStillReturnLiveResults(t *testing.T) {

	board := &stubBoard{
		name: "Wuzzuf",
		results: map[string][]entities.ScrapedJob{
			"physiotherapist": {{Title: "Physiotherapist", Company: "Cairo Clinic"}},
		},
	}
	matcher := &stubMatcher{err: errors.New("database locked")}

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	aggregator := newTestAggregator([]boards.Board{board}, matcher, clock)

	result, err := aggregator.GetJobs(context.Background(), "rehabilitation")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.ScrapedCount)
	assert.Equal(t, 0, result.StaticCount)
}

func Test_FormatSalaryRange(t *testing.T) {

	assert.Equal(t, "", formatSalaryRange(entities.Opportunity{}))
	assert.Equal(t, "8000 - 12000 EGP", formatSalaryRange(entities.Opportunity{
		SalaryMin: 8000, SalaryMax: 12000, SalaryCurrency: "EGP",
	}))
}

func Test_Categories_AreSortedAndResolveKeywords(t *testing.T) {

	categories := Categories()
	assert.Len(t, categories, 11)
	assert.Equal(t, "business-finance", categories[0])

	for _, category := range categories {
		assert.NotEmpty(t, KeywordsForCategory(category))
	}
	assert.Empty(t, KeywordsForCategory("astrology"))
}
