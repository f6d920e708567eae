package boards

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"golang.org/x/time/rate"
)

const wuzzufBaseURL = "https://wuzzuf.net"

type Wuzzuf struct {
	client
}

func NewWuzzuf() *Wuzzuf {
	return &Wuzzuf{client: newClient()}
}

func (w *Wuzzuf) SetHTTPClient(httpClient HTTPClient) {
	w.httpClient = httpClient
}

func (w *Wuzzuf) SetRateLimit(maxRequestsPerSecond float32) {
	w.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (w *Wuzzuf) Name() string {
	return "Wuzzuf"
}

func (w *Wuzzuf) Search(ctx context.Context, keyword string) ([]entities.ScrapedJob, error) {

	searchURL := wuzzufBaseURL + "/search/jobs/?q=" + url.QueryEscape(keyword) + "&a=hpb"

	doc, err := w.fetchDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var jobs []entities.ScrapedJob
	doc.Find(".css-1gatmva").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find("h2 a").Text())
		company := strings.TrimSpace(card.Find(".css-17s97q8").First().Text())
		location := strings.TrimSpace(card.Find(".css-5wys0k").Text())
		href := card.Find("h2 a").AttrOr("href", "")

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
			Source:   w.Name(),
			URL:      absoluteURL(href, wuzzufBaseURL),
		})
	})

	return truncate(jobs), nil
}
