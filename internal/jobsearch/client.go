// Package jobsearch finds live job listings for a predicted role. The
// jsearch API is the primary source; when it is unreachable or returns
// nothing the client falls back to static job-board search links so the
// caller always gets usable results.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	apiURL  = "https://jsearch.p.rapidapi.com"
	apiHost = "jsearch.p.rapidapi.com"

	maxJobs = 5
)

// Source reports where a result set came from.
type Source string

const (
	SourceAPI      Source = "api"
	SourceFallback Source = "fallback"
)

// Job is one listing or search link.
type Job struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Result is a set of jobs tagged with its source.
type Result struct {
	Jobs   []Job  `json:"jobs"`
	Source Source `json:"source"`
}

type jobItem struct {
	JobTitle      string `mapstructure:"job_title"`
	JobApplyLink  string `mapstructure:"job_apply_link"`
	JobGoogleLink string `mapstructure:"job_google_link"`
}

type searchResponse struct {
	Data []map[string]any `json:"data"`
}

// Client queries the jsearch API.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

// New creates a Client. An empty apiKey is allowed; every lookup then
// resolves through the fallback links.
func New(ctx context.Context, logger *zap.Logger, apiKey string) *Client {
	return &Client{
		ctx:    ctx,
		apiKey: apiKey,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// JobsForRole returns up to 5 listings for the role. API failures are
// logged and resolved through the static fallback.
func (c *Client) JobsForRole(role string) *Result {
	if c.apiKey == "" {
		return &Result{Jobs: FallbackJobs(role), Source: SourceFallback}
	}

	jobs, err := c.search(role)
	if err != nil {
		c.logger.Debug("job search api unavailable, using fallback links",
			zap.String("role", role),
			zap.Error(err),
		)
		return &Result{Jobs: FallbackJobs(role), Source: SourceFallback}
	}
	if len(jobs) == 0 {
		return &Result{Jobs: FallbackJobs(role), Source: SourceFallback}
	}
	return &Result{Jobs: jobs, Source: SourceAPI}
}

func (c *Client) search(role string) ([]Job, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, c.APIURL+"/search", nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("query", role)
	q.Set("num_pages", "1")
	req.URL.RawQuery = q.Encode()
	req = c.setHeaders(req)

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var parsed searchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	var jobs []Job
	for _, raw := range parsed.Data {
		if len(jobs) == maxJobs {
			break
		}

		var item jobItem
		if err := mapstructure.Decode(raw, &item); err != nil {
			return nil, fmt.Errorf("decode job item: %w", err)
		}

		link := item.JobApplyLink
		if link == "" {
			link = item.JobGoogleLink
		}
		if item.JobTitle == "" || link == "" {
			continue
		}
		jobs = append(jobs, Job{Title: item.JobTitle, URL: link})
	}
	return jobs, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", apiHost)

	return req
}
