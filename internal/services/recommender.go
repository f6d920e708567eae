package services

import (
	"context"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pathfinder-eg/pathfinder/internal/match"
	"github.com/pkg/errors"
)

var ErrUnknownOpportunity = errors.New("unknown opportunity")

type opportunitySource interface {
	All(ctx context.Context) ([]entities.Opportunity, error)
	ByID(ctx context.Context, id string) (*entities.Opportunity, error)
}

type pathSource interface {
	All(ctx context.Context) ([]entities.CareerPath, error)
}

type Recommendation struct {
	Opportunity entities.Opportunity
	Score       match.MatchScore
	Label       string
}

type PathRecommendation struct {
	Path  entities.CareerPath
	Score int
	Label string
}

// Recommender runs the match engine over the static datasets.
type Recommender struct {
	opportunities opportunitySource
	paths         pathSource
}

func NewRecommender(opportunities opportunitySource, paths pathSource) *Recommender {
	return &Recommender{opportunities: opportunities, paths: paths}
}

func (r *Recommender) Recommend(ctx context.Context, profile entities.Profile) ([]Recommendation, error) {

	opportunities, err := r.opportunities.All(ctx)
	if err != nil {
		return nil, err
	}

	ranked := match.Rank(opportunities, profile)

	recommendations := make([]Recommendation, len(ranked))
	for i, entry := range ranked {
		recommendations[i] = Recommendation{
			Opportunity: entry.Opportunity,
			Score:       entry.Score,
			Label:       match.Label(entry.Score.MatchPercentage),
		}
	}
	return recommendations, nil
}

func (r *Recommender) MatchOne(ctx context.Context, profile entities.Profile, opportunityID string) (*match.MatchScore, error) {

	opportunity, err := r.opportunities.ByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, errors.Wrapf(ErrUnknownOpportunity, "id %q", opportunityID)
	}

	score := match.Score(profile, *opportunity)
	return &score, nil
}

func (r *Recommender) RankPaths(ctx context.Context, skills, interests []string) ([]PathRecommendation, error) {

	paths, err := r.paths.All(ctx)
	if err != nil {
		return nil, err
	}

	ranked := match.RankPaths(paths, skills, interests)

	recommendations := make([]PathRecommendation, len(ranked))
	for i, entry := range ranked {
		recommendations[i] = PathRecommendation{
			Path:  entry.Path,
			Score: entry.Score,
			Label: match.Label(entry.Score),
		}
	}
	return recommendations, nil
}
