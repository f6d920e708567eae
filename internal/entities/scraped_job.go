package entities

// ScrapedJob is a normalized posting from a live job board or the static
// fallback dataset. It has no identity beyond (Title, Company), which the
// aggregator uses for deduplication.
type ScrapedJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Posted      string `json:"posted,omitempty"`
	SalaryRange string `json:"salaryRange,omitempty"`
}
