package match

import (
	"math"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
)

// MatchScore is the result of scoring one opportunity against one profile.
// It is recomputed on demand and never stored.
type MatchScore struct {
	OpportunityID   string   `json:"opportunityId"`
	MatchPercentage int      `json:"matchPercentage"`
	SkillMatch      int      `json:"skillMatch"`
	MajorMatch      bool     `json:"majorMatch"`
	LevelMatch      bool     `json:"levelMatch"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
}

// Score computes the weighted fit between a profile and an opportunity using
// the default job weights. The function is pure and total: malformed lists
// degrade sub-scores to zero rather than erroring.
func Score(profile entities.Profile, opportunity entities.Opportunity) MatchScore {
	return ScoreWithWeights(profile, opportunity, DefaultJobWeights)
}

func ScoreWithWeights(profile entities.Profile, opportunity entities.Opportunity, weights JobWeights) MatchScore {

	required := opportunity.RequiredSkillsAsArray()

	// A profile without skills or interests carries no signal at all, so it
	// must not pick up points from major or level alone.
	if profile.IsEmpty() {
		return MatchScore{
			OpportunityID: opportunity.ID,
			MatchedSkills: []string{},
			MissingSkills: required,
		}
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if anyLabelMatches(profile.Skills, skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	var skillScore float64
	if len(required) > 0 {
		skillScore = float64(len(matched)) / float64(len(required)) * 100
	}

	majorMatch := majorMatches(profile.Major, opportunity.RecommendedMajorsAsArray())
	majorScore := 0.0
	if majorMatch {
		majorScore = 100
	}

	levelMatch := profile.CareerLevel == opportunity.ExperienceLevel
	levelScore := levelProximity(opportunity.ExperienceLevel, profile.CareerLevel)

	final := skillScore*weights.Skills + majorScore*weights.Major + levelScore*weights.Level

	return MatchScore{
		OpportunityID:   opportunity.ID,
		MatchPercentage: clampPercentage(math.Round(final)),
		SkillMatch:      clampPercentage(math.Round(skillScore)),
		MajorMatch:      majorMatch,
		LevelMatch:      levelMatch,
		MatchedSkills:   matched,
		MissingSkills:   missing,
	}
}

func majorMatches(userMajor string, recommended []string) bool {
	if userMajor == "" {
		return false
	}
	return anyLabelMatches(recommended, userMajor)
}

// levelProximity gives full credit for an exact match and partial credit for
// near misses. The table is deliberately asymmetric: an entry-level user
// applying to a mid-level role (50) scores lower than a mid-level user
// applying to an entry-level role (70).
func levelProximity(opportunityLevel, userLevel entities.CareerLevel) float64 {
	switch {
	case opportunityLevel == userLevel:
		return 100
	case opportunityLevel == entities.LevelMid && userLevel == entities.LevelEntry:
		return 50
	case opportunityLevel == entities.LevelEntry && userLevel == entities.LevelMid:
		return 70
	case opportunityLevel == entities.LevelSenior && userLevel == entities.LevelMid:
		return 50
	default:
		return 30
	}
}

func clampPercentage(value float64) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return int(value)
}
