package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fazecat/newspulse/Internal/types"
	"github.com/fazecat/newspulse/Internal/utils"
	"github.com/fazecat/newspulse/Internal/utils/config"
	"github.com/fazecat/newspulse/Internal/utils/formatting"
)

// HeadlineSource produces the raw headlines published on one calendar day.
// Implementations must be safe to call once per day with no cross-call state.
type HeadlineSource interface {
	FetchDay(ctx context.Context, year, month, day int) ([]types.RawArticle, error)
}

// ErrRateLimited is returned when a day's fetch was still throttled after
// the configured number of cooldown retries. The articles accumulated
// before the stall are still returned alongside it.
var ErrRateLimited = errors.New("still rate limited after retries")

// Client queries the archive search API one day and one page at a time.
type Client struct {
	baseURL  string
	query    string
	location string
	apiKey   string

	httpClient *http.Client
	retry      utils.RetryConfig
}

// NewClient builds a Client from config plus the API credential. The key is
// passed in explicitly rather than read from the environment here, so tests
// and alternate entrypoints control where it comes from.
func NewClient(cfg *config.Config, apiKey string) *Client {
	return &Client{
		baseURL:  cfg.Archive.BaseURL,
		query:    cfg.Archive.Query,
		location: cfg.Archive.Location,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Archive.RequestTimeoutSecs) * time.Second,
		},
		retry: utils.RetryConfig{
			MaxRetries: cfg.Archive.MaxRateLimitRetries,
			Cooldown:   time.Duration(cfg.Archive.CooldownSeconds) * time.Second,
			Sleep:      time.Sleep,
		},
	}
}

// SetSleep swaps the cooldown wait, used by tests to avoid real sleeps.
func (c *Client) SetSleep(sleep func(time.Duration)) {
	c.retry.Sleep = sleep
}

type searchDoc struct {
	Headline struct {
		Main string `json:"main"`
	} `json:"headline"`
	PubDate string `json:"pub_date"`
}

type searchResponse struct {
	Response struct {
		Docs []searchDoc `json:"docs"`
	} `json:"response"`
}

// FetchDay pulls every result page for the given day and returns the
// accumulated articles. A page with no documents ends the day. Throttled
// pages are retried in place after a cooldown; any other failure logs the
// date and status, abandons the rest of the day and returns what was
// collected so far with a nil error.
func (c *Client) FetchDay(ctx context.Context, year, month, day int) ([]types.RawArticle, error) {
	var articles []types.RawArticle
	date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

	for page := 0; ; page++ {
		var docs []searchDoc

		err := utils.RetryWithCooldown(c.retry, func() (bool, error) {
			ds, status, err := c.fetchPage(ctx, year, month, day, page)
			if err != nil {
				return false, err
			}
			switch status {
			case http.StatusOK:
				docs = ds
				return false, nil
			case http.StatusTooManyRequests:
				log.Printf("⏳ Rate limit exceeded for %s page %d. Waiting before retrying...", date, page)
				return true, ErrRateLimited
			default:
				return false, fmt.Errorf("status %d", status)
			}
		})

		if err != nil {
			if errors.Is(err, ErrRateLimited) {
				log.Printf("❌ Giving up on %s page %d: still throttled after %d retries", date, page, c.retry.MaxRetries)
				return articles, fmt.Errorf("fetch %s: %w", date, ErrRateLimited)
			}
			// Hard failure: keep the pages already collected, skip the rest
			// of the day.
			log.Printf("⚠️  Error fetching data for %s: %v", date, err)
			return articles, nil
		}

		if len(docs) == 0 {
			return articles, nil
		}

		for _, doc := range docs {
			articles = append(articles, types.RawArticle{
				Headline:    doc.Headline.Main,
				PublishedAt: formatPubDate(doc.PubDate),
			})
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, year, month, day, page int) ([]searchDoc, int, error) {
	apiDay := formatting.APIDate(year, month, day)

	params := url.Values{}
	params.Set("q", c.query)
	params.Set("fq", fmt.Sprintf("glocations:(%q)", c.location))
	params.Set("begin_date", apiDay)
	params.Set("end_date", apiDay)
	params.Set("api-key", c.apiKey)
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return sr.Response.Docs, resp.StatusCode, nil
}

// formatPubDate turns the API's ISO-8601 timestamp into the
// "2006-01-02 15:04:05" form carried through the pipeline: the 'T' becomes
// a space and everything from the timezone offset on is dropped.
func formatPubDate(ts string) string {
	ts = strings.ReplaceAll(ts, "T", " ")
	if cut, _, found := strings.Cut(ts, "+"); found {
		return cut
	}
	return ts
}
