package boards

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"golang.org/x/time/rate"
)

const forasnaBaseURL = "https://www.forasna.com"

type Forasna struct {
	client
}

func NewForasna() *Forasna {
	return &Forasna{client: newClient()}
}

func (f *Forasna) SetHTTPClient(httpClient HTTPClient) {
	f.httpClient = httpClient
}

func (f *Forasna) SetRateLimit(maxRequestsPerSecond float32) {
	f.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (f *Forasna) Name() string {
	return "Forasna"
}

func (f *Forasna) Search(ctx context.Context, keyword string) ([]entities.ScrapedJob, error) {

	searchURL := forasnaBaseURL + "/jobs?search=" + url.QueryEscape(keyword)

	doc, err := f.fetchDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var jobs []entities.ScrapedJob
	doc.Find(".job-card, .job-item").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(".job-title, h3, h2").First().Text())
		company := strings.TrimSpace(card.Find(".company-name, .employer-name").First().Text())
		location := strings.TrimSpace(card.Find(".location, .job-location").First().Text())
		href := card.Find("a").First().AttrOr("href", "")

		if title == "" || company == "" {
			return
		}

		if location == "" {
			location = "Egypt"
		}

		jobs = append(jobs, entities.ScrapedJob{
			Title:    title,
			Company:  company,
			Location: location,
			Source:   f.Name(),
			URL:      absoluteURL(href, forasnaBaseURL),
		})
	})

	return truncate(jobs), nil
}
