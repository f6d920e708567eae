package repositories

import (
	"context"
	"strings"

	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Opportunities struct {
	db *gorm.DB
}

func NewOpportunitiesRepository(db *gorm.DB) *Opportunities {
	return &Opportunities{db: db}
}

func (repo *Opportunities) All(ctx context.Context) ([]entities.Opportunity, error) {

	var opportunities []entities.Opportunity
	if err := repo.db.WithContext(ctx).Find(&opportunities).Error; err != nil {
		return nil, err
	}
	return opportunities, nil
}

func (repo *Opportunities) ByID(ctx context.Context, id string) (*entities.Opportunity, error) {

	var opportunity entities.Opportunity
	if err := repo.db.WithContext(ctx).First(&opportunity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &opportunity, nil
}

func (repo *Opportunities) ByCategory(ctx context.Context, category string) ([]entities.Opportunity, error) {

	var opportunities []entities.Opportunity
	if err := repo.db.WithContext(ctx).Find(&opportunities, "category = ?", category).Error; err != nil {
		return nil, err
	}
	return opportunities, nil
}

// MatchingKeywords returns up to limit opportunities whose title or category
// contains any of the keywords, case-insensitively. The dataset is small and
// fixed, so filtering happens in memory.
func (repo *Opportunities) MatchingKeywords(ctx context.Context, keywords []string, limit int) ([]entities.Opportunity, error) {

	all, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}

	var matching []entities.Opportunity
	for _, opportunity := range all {
		if len(matching) == limit {
			break
		}
		if matchesAnyKeyword(opportunity, keywords) {
			matching = append(matching, opportunity)
		}
	}
	return matching, nil
}

func matchesAnyKeyword(opportunity entities.Opportunity, keywords []string) bool {
	title := strings.ToLower(opportunity.Title)
	category := strings.ToLower(opportunity.Category)

	for _, keyword := range keywords {
		keyword = strings.ToLower(keyword)
		if strings.Contains(title, keyword) || strings.Contains(category, keyword) {
			return true
		}
	}
	return false
}
