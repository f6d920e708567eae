package services

import (
	"context"
	"testing"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func Test_ExtractProfile_ParsesStrictJson(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"skills":["Python","SQL"],"interests":["data"],"suggestedMajor":"Computer Science","careerLevel":"mid"}`, nil)

	profile, err := NewProfileExtractor(ai).ExtractProfile(context.Background(), "cv text")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL"}, profile.Skills)
	assert.Equal(t, "Computer Science", profile.Major)
	assert.Equal(t, entities.LevelMid, profile.CareerLevel)
}

func Test_ExtractProfile_WhenResponseIsFenced_ShouldStillParse(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("```json\n{\"skills\":[\"Go\"],\"interests\":[],\"suggestedMajor\":\"\",\"careerLevel\":\"senior\"}\n```", nil)

	profile, err := NewProfileExtractor(ai).ExtractProfile(context.Background(), "cv text")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Go"}, profile.Skills)
	assert.Equal(t, entities.LevelSenior, profile.CareerLevel)
}

func Test_ExtractProfile_WithUnknownCareerLevel_ShouldDefaultToEntry(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"skills":[],"interests":[],"suggestedMajor":"","careerLevel":"principal"}`, nil)

	profile, err := NewProfileExtractor(ai).ExtractProfile(context.Background(), "cv text")
	assert.NoError(t, err)
	assert.Equal(t, entities.LevelEntry, profile.CareerLevel)
}

func Test_ExtractProfile_WhenResponseIsNotJson_ShouldFail(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("I could not find a CV in this text.", nil)

	_, err := NewProfileExtractor(ai).ExtractProfile(context.Background(), "cv text")
	assert.Error(t, err)
}

func Test_ExtractProfile_PropagatesClientError(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("", errors.New("rate limited"))

	_, err := NewProfileExtractor(ai).ExtractProfile(context.Background(), "cv text")
	assert.Error(t, err)
}
