package entities

import (
	"strings"

	"github.com/samber/lo"
)

// Opportunity is a posting from the static career dataset. Skill and major
// lists are stored comma-joined so the whole record maps to one table row.
type Opportunity struct {
	ID                string `gorm:"primaryKey"`
	Title             string
	Category          string
	RequiredSkills    string
	RecommendedMajors string
	ExperienceLevel   CareerLevel
	Organization      string
	Location          string
	ApplicationURL    string
	SalaryMin         int
	SalaryMax         int
	SalaryCurrency    string
}

func NewOpportunity(id, title, category string, requiredSkills, recommendedMajors []string,
	level CareerLevel, organization, location string) Opportunity {

	return Opportunity{
		ID:                id,
		Title:             title,
		Category:          category,
		RequiredSkills:    strings.Join(requiredSkills, ","),
		RecommendedMajors: strings.Join(recommendedMajors, ","),
		ExperienceLevel:   level,
		Organization:      organization,
		Location:          location,
	}
}

func (o *Opportunity) RequiredSkillsAsArray() []string {
	return splitList(o.RequiredSkills)
}

func (o *Opportunity) RecommendedMajorsAsArray() []string {
	return splitList(o.RecommendedMajors)
}

func splitList(joined string) []string {
	if joined == "" {
		return []string{}
	}

	return lo.Map(strings.Split(joined, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}
