package boards

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pathfinder-eg/pathfinder/internal/entities"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// maxResultsPerSearch bounds how many postings a single (board, keyword)
// query may contribute.
const maxResultsPerSearch = 10

const defaultTimeout = 10 * time.Second

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Board is a single external job board. Search returns normalized postings
// for one keyword; markup drift or outages surface as an error that the
// caller treats as zero results for this board only.
type Board interface {
	Name() string
	Search(ctx context.Context, keyword string) ([]entities.ScrapedJob, error)
}

// client holds the pieces shared by every board implementation.
type client struct {
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func newClient() client {
	return client{httpClient: &http.Client{Timeout: defaultTimeout}}
}

func (c *client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error sending request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("request failed with status %v", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing response body")
	}
	return doc, nil
}

func absoluteURL(href, baseURL string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return baseURL + href
}

func truncate(jobs []entities.ScrapedJob) []entities.ScrapedJob {
	if len(jobs) > maxResultsPerSearch {
		return jobs[:maxResultsPerSearch]
	}
	return jobs
}
