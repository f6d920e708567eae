package api

import (
	"time"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pathfinder-eg/pathfinder/internal/match"
	"github.com/pathfinder-eg/pathfinder/internal/services"
	"github.com/samber/lo"
)

type profileRequest struct {
	Skills      []string `json:"skills"`
	Interests   []string `json:"interests"`
	Major       string   `json:"major"`
	CareerLevel string   `json:"careerLevel" validate:"omitempty,oneof=entry mid senior"`
}

func (r profileRequest) toProfile() entities.Profile {
	level := entities.CareerLevel(r.CareerLevel)
	if r.CareerLevel == "" {
		level = entities.LevelEntry
	}
	return entities.Profile{
		Skills:      r.Skills,
		Interests:   r.Interests,
		Major:       r.Major,
		CareerLevel: level,
	}
}

type matchRequest struct {
	Profile       profileRequest `json:"profile"`
	OpportunityID string         `json:"opportunityId" validate:"required"`
}

type pathsRankRequest struct {
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

type extractRequest struct {
	Text string `json:"text" validate:"required,min=20"`
}

type jobsResponse struct {
	Jobs         []entities.ScrapedJob `json:"jobs"`
	Source       string                `json:"source"`
	ScrapedCount int                   `json:"scrapedCount"`
	StaticCount  int                   `json:"staticCount"`
	Timestamp    string                `json:"timestamp"`
}

func toJobsResponse(result *services.JobsResult) jobsResponse {
	jobs := result.Jobs
	if jobs == nil {
		jobs = []entities.ScrapedJob{}
	}
	return jobsResponse{
		Jobs:         jobs,
		Source:       result.Source,
		ScrapedCount: result.ScrapedCount,
		StaticCount:  result.StaticCount,
		Timestamp:    result.Timestamp.Format(time.RFC3339),
	}
}

type opportunityResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	RequiredSkills    []string `json:"requiredSkills"`
	RecommendedMajors []string `json:"recommendedMajors"`
	ExperienceLevel   string   `json:"experienceLevel"`
	Organization      string   `json:"organization"`
	Location          string   `json:"location"`
	ApplicationURL    string   `json:"applicationUrl,omitempty"`
}

type recommendationResponse struct {
	Opportunity opportunityResponse `json:"opportunity"`
	Score       match.MatchScore    `json:"score"`
	Label       string              `json:"label"`
}

func toRecommendationsResponse(recommendations []services.Recommendation) []recommendationResponse {
	return lo.Map(recommendations, func(r services.Recommendation, _ int) recommendationResponse {
		return recommendationResponse{
			Opportunity: toOpportunityResponse(r.Opportunity),
			Score:       r.Score,
			Label:       r.Label,
		}
	})
}

func toOpportunityResponse(opportunity entities.Opportunity) opportunityResponse {
	return opportunityResponse{
		ID:                opportunity.ID,
		Title:             opportunity.Title,
		Category:          opportunity.Category,
		RequiredSkills:    opportunity.RequiredSkillsAsArray(),
		RecommendedMajors: opportunity.RecommendedMajorsAsArray(),
		ExperienceLevel:   string(opportunity.ExperienceLevel),
		Organization:      opportunity.Organization,
		Location:          opportunity.Location,
		ApplicationURL:    opportunity.ApplicationURL,
	}
}

type pathRecommendationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Score       int    `json:"score"`
	Label       string `json:"label"`
}

func toPathsResponse(recommendations []services.PathRecommendation) []pathRecommendationResponse {
	return lo.Map(recommendations, func(r services.PathRecommendation, _ int) pathRecommendationResponse {
		return pathRecommendationResponse{
			ID:          r.Path.ID,
			Name:        r.Path.Name,
			Description: r.Path.Description,
			Score:       r.Score,
			Label:       r.Label,
		}
	})
}

type profileResponse struct {
	Skills      []string `json:"skills"`
	Interests   []string `json:"interests"`
	Major       string   `json:"major"`
	CareerLevel string   `json:"careerLevel"`
}

func toProfileResponse(profile *entities.Profile) profileResponse {
	return profileResponse{
		Skills:      profile.Skills,
		Interests:   profile.Interests,
		Major:       profile.Major,
		CareerLevel: string(profile.CareerLevel),
	}
}
