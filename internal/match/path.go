package match

import (
	"math"
	"sort"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
)

// maxCountedInterests bounds the interest denominator so that a user listing
// many interests is not penalized for the ones a path cannot cover.
const maxCountedInterests = 3

type RankedPath struct {
	Path  entities.CareerPath
	Score int
}

// ScorePath computes the path-flavored fit between user skills/interests and
// a career path category using the default path weights.
func ScorePath(path entities.CareerPath, skills, interests []string) int {
	return ScorePathWithWeights(path, skills, interests, DefaultPathWeights)
}

func ScorePathWithWeights(path entities.CareerPath, skills, interests []string, weights PathWeights) int {

	if len(skills) == 0 && len(interests) == 0 {
		return 0
	}

	required := path.RequiredSkillsAsArray()
	skillRatio := matchRatio(required, skills, len(required))

	pathText := path.Name + " " + path.Description
	matchedInterests := 0
	for _, interest := range interests {
		if FuzzyLabelMatch(interest, pathText) {
			matchedInterests++
		}
	}
	interestRatio := boundedRatio(matchedInterests, min(len(interests), maxCountedInterests))

	profileLabels := append(append([]string{}, skills...), interests...)
	keywords := path.KeywordsAsArray()
	keywordRatio := matchRatio(keywords, profileLabels, len(keywords))

	score := 100 * (skillRatio*weights.Skills + interestRatio*weights.Interests + keywordRatio*weights.Keywords)
	return clampPercentage(math.Round(score))
}

// RankPaths orders paths by descending score, preserving input order on ties.
func RankPaths(paths []entities.CareerPath, skills, interests []string) []RankedPath {

	ranked := make([]RankedPath, len(paths))
	for i, path := range paths {
		ranked[i] = RankedPath{Path: path, Score: ScorePath(path, skills, interests)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

func matchRatio(targets, labels []string, denominator int) float64 {
	if denominator == 0 {
		return 0
	}

	matched := 0
	for _, target := range targets {
		if anyLabelMatches(labels, target) {
			matched++
		}
	}
	return boundedRatio(matched, denominator)
}

func boundedRatio(matched, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	ratio := float64(matched) / float64(denominator)
	if ratio > 1 {
		return 1
	}
	return ratio
}
