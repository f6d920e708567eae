package services

import "sort"

// searchKeywords maps each recognized category to the literal terms queried
// on the external boards. Unknown categories resolve to an empty list.
var searchKeywords = map[string][]string{
	"software-tech":          {"software engineer", "developer", "data scientist", "programmer"},
	"industrial-engineering": {"mechanical engineer", "civil engineer", "electrical engineer"},
	"sustainability":         {"environmental engineer", "renewable energy", "sustainability"},
	"business-finance":       {"business analyst", "financial analyst", "consultant"},
	"media-marketing":        {"marketing", "digital marketing", "content creator", "social media"},
	"creative-design":        {"graphic designer", "UX designer", "UI designer"},
	"research-education":     {"teacher", "researcher", "academic", "translator"},
	"legal-compliance":       {"lawyer", "legal", "compliance officer"},
	"healthcare-clinical":    {"dentist", "nurse", "doctor", "healthcare"},
	"pharma-biotech":         {"pharmacist", "pharmaceutical", "clinical research"},
	"rehabilitation":         {"physiotherapist", "physical therapist", "rehabilitation"},
}

func KeywordsForCategory(categoryID string) []string {
	return searchKeywords[categoryID]
}

func Categories() []string {
	categories := make([]string, 0, len(searchKeywords))
	for category := range searchKeywords {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
