// Package search provides web-search providers behind output.SearchPort.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"chat-agent/internal/application/port/output"
	"chat-agent/internal/domain/entity"
)

const (
	tavilyEndpoint = "https://api.tavily.com/search"
	requestTimeout = 15 * time.Second
)

var _ output.SearchPort = (*TavilyClient)(nil)

// TavilyClient queries the Tavily search API.
type TavilyClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   output.LoggerPort
}

func NewTavilyClient(apiKey string, logger output.LoggerPort) *TavilyClient {
	return &TavilyClient{
		apiKey:   apiKey,
		endpoint: tavilyEndpoint,
		client:   &http.Client{Timeout: requestTimeout},
		logger:   logger,
	}
}

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth,omitempty"`
	MaxResults  int    `json:"max_results,omitempty"`
}

type tavilyResponse struct {
	Query   string         `json:"query"`
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

func (c *TavilyClient) Search(ctx context.Context, query string) (*output.SearchResult, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:      c.apiKey,
		Query:       query,
		SearchDepth: "basic",
		MaxResults:  5,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", entity.ErrSearchUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", entity.ErrSearchUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Tavily request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Tavily returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: HTTP %d", entity.ErrSearchUnavailable, resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", entity.ErrSearchUnavailable, err)
	}

	for _, r := range parsed.Results {
		if r.URL == "" || (r.Title == "" && r.Content == "") {
			continue
		}
		return &output.SearchResult{
			Title:    r.Title,
			URL:      r.URL,
			Synopsis: r.Content,
			Source:   hostOf(r.URL),
		}, nil
	}

	return nil, fmt.Errorf("%w: query %q", entity.ErrNoResults, query)
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
