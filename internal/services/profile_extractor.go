package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pkg/errors"
)

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

// ProfileExtractor turns free CV text into a structured profile using an
// opaque language-model collaborator. The model is asked for strict JSON;
// code fences around the payload are tolerated.
type ProfileExtractor struct {
	aiClient aiClient
}

func NewProfileExtractor(aiClient aiClient) *ProfileExtractor {
	return &ProfileExtractor{aiClient: aiClient}
}

type extractedProfile struct {
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
	SuggestedMajor string   `json:"suggestedMajor"`
	CareerLevel    string   `json:"careerLevel"`
}

func (e *ProfileExtractor) ExtractProfile(ctx context.Context, cvText string) (*entities.Profile, error) {

	response, err := e.aiClient.GenerateResponse(ctx, extractionRequest(cvText))
	if err != nil {
		return nil, err
	}

	var extracted extractedProfile
	if err = json.Unmarshal([]byte(stripCodeFence(response)), &extracted); err != nil {
		return nil, errors.Wrapf(err, "unexpected extraction response %q", response)
	}

	level, err := entities.ToCareerLevel(extracted.CareerLevel)
	if err != nil {
		level = entities.LevelEntry
	}

	return &entities.Profile{
		Skills:      extracted.Skills,
		Interests:   extracted.Interests,
		Major:       extracted.SuggestedMajor,
		CareerLevel: level,
	}, nil
}

func extractionRequest(cvText string) string {
	return "You are a career advisor for university students. Read the CV below and respond " +
		"with JSON only, no prose, using exactly this shape: " +
		`{"skills": ["..."], "interests": ["..."], "suggestedMajor": "...", "careerLevel": "entry|mid|senior"}` +
		" Skills are concrete technical or professional abilities; interests are broader themes. " +
		"CV: " + cvText
}

func stripCodeFence(response string) string {
	response = strings.TrimSpace(response)
	if !strings.HasPrefix(response, "```") {
		return response
	}

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
