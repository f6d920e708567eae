package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pathfinder-eg/pathfinder/internal/match"
	"github.com/pathfinder-eg/pathfinder/internal/services"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockJobsProvider struct {
	mock.Mock
}

func (m *mockJobsProvider) GetJobs(ctx context.Context, categoryID string) (*services.JobsResult, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.JobsResult), args.Error(1)
}

type mockRecommender struct {
	mock.Mock
}

func (m *mockRecommender) Recommend(ctx context.Context, profile entities.Profile) ([]services.Recommendation, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.Recommendation), args.Error(1)
}

func (m *mockRecommender) MatchOne(ctx context.Context, profile entities.Profile, opportunityID string) (*match.MatchScore, error) {
	args := m.Called(ctx, profile, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*match.MatchScore), args.Error(1)
}

func (m *mockRecommender) RankPaths(ctx context.Context, skills, interests []string) ([]services.PathRecommendation, error) {
	args := m.Called(ctx, skills, interests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.PathRecommendation), args.Error(1)
}

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) ExtractProfile(ctx context.Context, cvText string) (*entities.Profile, error) {
	args := m.Called(ctx, cvText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func Test_GetJobs_ReturnsAggregatedResult(t *testing.T) {

	provider := &mockJobsProvider{}
	provider.On("GetJobs", mock.Anything, "software-tech").Return(&services.JobsResult{
		Jobs: []entities.ScrapedJob{
			{Title: "Backend Developer", Company: "Instabug", Source: "Wuzzuf"},
		},
		Source:       services.SourceLive,
		ScrapedCount: 1,
		StaticCount:  0,
		Timestamp:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}, nil)

	router := NewHandlers(provider, &mockRecommender{}, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/jobs?category=software-tech", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response jobsResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, services.SourceLive, response.Source)
	assert.Equal(t, 1, response.ScrapedCount)
	assert.Len(t, response.Jobs, 1)
	assert.Equal(t, "Backend Developer", response.Jobs[0].Title)
	assert.Equal(t, "2024-05-01T12:00:00Z", response.Timestamp)
	provider.AssertExpectations(t)
}

func Test_GetJobs_WithoutCategory_ShouldFail(t *testing.T) {

	router := NewHandlers(&mockJobsProvider{}, &mockRecommender{}, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func Test_GetJobs_WithUnknownCategory_ShouldFail(t *testing.T) {

	provider := &mockJobsProvider{}
	provider.On("GetJobs", mock.Anything, "astrology").
		Return(nil, errors.Wrap(services.ErrInvalidCategory, "category \"astrology\""))

	router := NewHandlers(provider, &mockRecommender{}, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/jobs?category=astrology", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func Test_Recommendations_ReturnsRankedList(t *testing.T) {

	recommender := &mockRecommender{}
	recommender.On("Recommend", mock.Anything, mock.MatchedBy(func(p entities.Profile) bool {
		return p.Major == "Computer Science" && p.CareerLevel == entities.LevelMid
	})).Return([]services.Recommendation{
		{
			Opportunity: entities.Opportunity{ID: "op-1", Title: "Data Scientist"},
			Score:       match.MatchScore{MatchPercentage: 85},
			Label:       "Excellent Match",
		},
	}, nil)

	body := `{"skills":["python"],"interests":["data"],"major":"Computer Science","careerLevel":"mid"}`
	router := NewHandlers(&mockJobsProvider{}, recommender, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []recommendationResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "op-1", response[0].Opportunity.ID)
	assert.Equal(t, "Excellent Match", response[0].Label)
	recommender.AssertExpectations(t)
}

func Test_Recommendations_WithInvalidCareerLevel_ShouldFail(t *testing.T) {

	body := `{"skills":["python"],"careerLevel":"principal"}`
	router := NewHandlers(&mockJobsProvider{}, &mockRecommender{}, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func Test_Match_WithUnknownOpportunity_ShouldReturnNotFound(t *testing.T) {

	recommender := &mockRecommender{}
	recommender.On("MatchOne", mock.Anything, mock.Anything, "missing").
		Return(nil, errors.Wrap(services.ErrUnknownOpportunity, "id \"missing\""))

	body := `{"profile":{"skills":["go"]},"opportunityId":"missing"}`
	router := NewHandlers(&mockJobsProvider{}, recommender, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/match", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func Test_Match_ReturnsScore(t *testing.T) {

	recommender := &mockRecommender{}
	recommender.On("MatchOne", mock.Anything, mock.Anything, "op-7").
		Return(&match.MatchScore{MatchPercentage: 80, SkillMatch: 67}, nil)

	body := `{"profile":{"skills":["go"],"careerLevel":"entry"},"opportunityId":"op-7"}`
	router := NewHandlers(&mockJobsProvider{}, recommender, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/match", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response match.MatchScore
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 80, response.MatchPercentage)
}

func Test_RankPaths_ReturnsRankedPaths(t *testing.T) {

	recommender := &mockRecommender{}
	recommender.On("RankPaths", mock.Anything, []string{"python"}, []string{"data"}).
		Return([]services.PathRecommendation{
			{Path: entities.CareerPath{ID: "path-1", Name: "Data & AI"}, Score: 70, Label: "Good Match"},
		}, nil)

	body := `{"skills":["python"],"interests":["data"]}`
	router := NewHandlers(&mockJobsProvider{}, recommender, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/paths/rank", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []pathRecommendationResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, "path-1", response[0].ID)
	assert.Equal(t, 70, response[0].Score)
}

func Test_ExtractProfile_WhenNotConfigured_ShouldReturnUnavailable(t *testing.T) {

	body := `{"text":"Experienced python developer with a data science background"}`
	router := NewHandlers(&mockJobsProvider{}, &mockRecommender{}, nil).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/profile/extract", strings.NewReader(body)))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func Test_ExtractProfile_ReturnsParsedProfile(t *testing.T) {

	extractor := &mockExtractor{}
	extractor.On("ExtractProfile", mock.Anything, mock.Anything).Return(&entities.Profile{
		Skills:      []string{"python", "sql"},
		Interests:   []string{"machine learning"},
		Major:       "Computer Science",
		CareerLevel: entities.LevelMid,
	}, nil)

	body := `{"text":"Mid-level data analyst with python and sql, CS graduate"}`
	router := NewHandlers(&mockJobsProvider{}, &mockRecommender{}, extractor).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/profile/extract", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response profileResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, []string{"python", "sql"}, response.Skills)
	assert.Equal(t, "mid", response.CareerLevel)
}

func Test_ExtractProfile_WithShortText_ShouldFail(t *testing.T) {

	extractor := &mockExtractor{}
	router := NewHandlers(&mockJobsProvider{}, &mockRecommender{}, extractor).Router()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/profile/extract", strings.NewReader(`{"text":"too short"}`)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
