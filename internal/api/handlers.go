package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pathfinder-eg/pathfinder/internal/logger"
	"github.com/pathfinder-eg/pathfinder/internal/match"
	"github.com/pathfinder-eg/pathfinder/internal/metrics"
	"github.com/pathfinder-eg/pathfinder/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type jobsProvider interface {
	GetJobs(ctx context.Context, categoryID string) (*services.JobsResult, error)
}

type recommender interface {
	Recommend(ctx context.Context, profile entities.Profile) ([]services.Recommendation, error)
	MatchOne(ctx context.Context, profile entities.Profile, opportunityID string) (*match.MatchScore, error)
	RankPaths(ctx context.Context, skills, interests []string) ([]services.PathRecommendation, error)
}

type profileExtractor interface {
	ExtractProfile(ctx context.Context, cvText string) (*entities.Profile, error)
}

type Handlers struct {
	aggregator  jobsProvider
	recommender recommender
	extractor   profileExtractor
	validate    *validator.Validate
}

// NewHandlers wires the API surface. extractor may be nil when no AI key is
// configured; the extraction endpoint then answers 503.
func NewHandlers(aggregator jobsProvider, recommender recommender, extractor profileExtractor) *Handlers {
	return &Handlers{
		aggregator:  aggregator,
		recommender: recommender,
		extractor:   extractor,
		validate:    validator.New(),
	}
}

func (h *Handlers) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/jobs", h.getJobs)
	mux.HandleFunc("/api/recommendations", h.recommendations)
	mux.HandleFunc("/api/match", h.matchOne)
	mux.HandleFunc("/api/paths/rank", h.rankPaths)
	mux.HandleFunc("/api/profile/extract", h.extractProfile)
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

func (h *Handlers) getJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	categoryID := r.URL.Query().Get("category")
	if categoryID == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}

	result, err := h.aggregator.GetJobs(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			writeError(w, http.StatusBadRequest, "invalid category")
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).
			Errorf("failed to get jobs: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch jobs")
		return
	}

	writeJSON(w, http.StatusOK, toJobsResponse(result))
}

func (h *Handlers) recommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req profileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	recommendations, err := h.recommender.Recommend(r.Context(), req.toProfile())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).
			Errorf("failed to build recommendations: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to build recommendations")
		return
	}

	writeJSON(w, http.StatusOK, toRecommendationsResponse(recommendations))
}

func (h *Handlers) matchOne(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req matchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	score, err := h.recommender.MatchOne(r.Context(), req.Profile.toProfile(), req.OpportunityID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownOpportunity) {
			writeError(w, http.StatusNotFound, "unknown opportunity")
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).
			Errorf("failed to match opportunity: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to match opportunity")
		return
	}

	writeJSON(w, http.StatusOK, score)
}

func (h *Handlers) rankPaths(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req pathsRankRequest
	if !decodeBody(w, r, &req) {
		return
	}

	recommendations, err := h.recommender.RankPaths(r.Context(), req.Skills, req.Interests)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).
			Errorf("failed to rank paths: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to rank paths")
		return
	}

	writeJSON(w, http.StatusOK, toPathsResponse(recommendations))
}

func (h *Handlers) extractProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "profile extraction is not configured")
		return
	}

	var req extractRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.extractor.ExtractProfile(r.Context(), req.Text)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiAPI).
			Errorf("failed to extract profile: %v", err)
		writeError(w, http.StatusBadGateway, "failed to extract profile")
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}
