package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"chat-agent/internal/application/port/output"
	"chat-agent/internal/domain/entity"

	"golang.org/x/net/html"
)

const (
	duckduckgoEndpoint = "https://html.duckduckgo.com/html/"
	userAgent          = "Mozilla/5.0 (compatible; chat-agent/1.0)"
)

var _ output.SearchPort = (*DuckDuckGoClient)(nil)

// DuckDuckGoClient scrapes the HTML results page of DuckDuckGo. It needs no
// API key, which makes it the default provider when Tavily is not configured.
type DuckDuckGoClient struct {
	endpoint string
	client   *http.Client
	logger   output.LoggerPort
}

func NewDuckDuckGoClient(logger output.LoggerPort) *DuckDuckGoClient {
	return &DuckDuckGoClient{
		endpoint: duckduckgoEndpoint,
		client:   &http.Client{Timeout: requestTimeout},
		logger:   logger,
	}
}

func (c *DuckDuckGoClient) Search(ctx context.Context, query string) (*output.SearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", entity.ErrSearchUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("DuckDuckGo request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("DuckDuckGo returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: HTTP %d", entity.ErrSearchUnavailable, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", entity.ErrSearchUnavailable, err)
	}

	result := firstResult(doc)
	if result == nil {
		return nil, fmt.Errorf("%w: query %q", entity.ErrNoResults, query)
	}
	return result, nil
}

// firstResult walks the parsed page and assembles the first organic result.
// The page layout: each result has an <a class="result__a"> title link and an
// <a class="result__snippet"> snippet; fields missing from the markup are
// tolerated, a result only needs a title and a URL.
func firstResult(doc *html.Node) *output.SearchResult {
	var title, href, snippet string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if title != "" && snippet != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			switch {
			case hasClass(n, "result__a") && title == "":
				title = strings.TrimSpace(nodeText(n))
				href = resolveHref(attrValue(n, "href"))
			case hasClass(n, "result__snippet") && snippet == "":
				snippet = strings.TrimSpace(nodeText(n))
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if title == "" || href == "" {
		return nil
	}
	return &output.SearchResult{
		Title:    title,
		URL:      href,
		Synopsis: snippet,
		Source:   hostOf(href),
	}
}

// resolveHref unwraps DuckDuckGo's redirect links (//duckduckgo.com/l/?uddg=...)
// back to the target URL.
func resolveHref(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if strings.HasSuffix(u.Host, "duckduckgo.com") || strings.HasPrefix(u.Path, "/l/") {
		if target := u.Query().Get("uddg"); target != "" {
			return target
		}
	}
	if u.Scheme == "" && strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

func hasClass(n *html.Node, class string) bool {
	for _, part := range strings.Fields(attrValue(n, "class")) {
		if part == class {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(nodeText(child))
	}
	return sb.String()
}
