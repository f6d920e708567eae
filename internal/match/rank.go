package match

import (
	"sort"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
)

type RankedOpportunity struct {
	Opportunity entities.Opportunity
	Score       MatchScore
}

// Rank scores every opportunity and orders the result by descending match
// percentage. The sort is stable: opportunities with equal scores keep their
// input order.
func Rank(opportunities []entities.Opportunity, profile entities.Profile) []RankedOpportunity {

	ranked := make([]RankedOpportunity, len(opportunities))
	for i, opportunity := range opportunities {
		ranked[i] = RankedOpportunity{
			Opportunity: opportunity,
			Score:       Score(profile, opportunity),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.MatchPercentage > ranked[j].Score.MatchPercentage
	})

	return ranked
}
