package entities

// CareerPath is a broad path category from the static dataset, scoreable
// against user skills and interests with the path-flavored weighting.
type CareerPath struct {
	ID             string `gorm:"primaryKey"`
	Name           string
	Description    string
	RequiredSkills string
	Keywords       string
}

func (p *CareerPath) RequiredSkillsAsArray() []string {
	return splitList(p.RequiredSkills)
}

func (p *CareerPath) KeywordsAsArray() []string {
	return splitList(p.Keywords)
}
