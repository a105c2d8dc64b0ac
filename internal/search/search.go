package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Result is one web search hit.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Client is a thin SerpAPI wrapper used to ground plan generation with fresh
// web results. It is optional: the generator works without one.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://serpapi.com/search.json",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type serpResponse struct {
	OrganicResults []Result `json:"organic_results"`
}

func (c *Client) search(ctx context.Context, query string, topn int, news bool) ([]Result, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", fmt.Sprintf("%d", topn))
	params.Set("hl", "en")
	params.Set("gl", "us")
	if news {
		params.Set("tbm", "nws")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search error (status %d): %s", resp.StatusCode, string(body))
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}

	if len(sr.OrganicResults) > topn {
		sr.OrganicResults = sr.OrganicResults[:topn]
	}
	return sr.OrganicResults, nil
}

// Company runs the multi-query research pass for a company: general profile,
// products, competitors, and news.
func (c *Client) Company(ctx context.Context, company string) ([]Result, error) {
	queries := []struct {
		q    string
		news bool
	}{
		{company + " company overview profile financials business", false},
		{company + " products services list business segments", false},
		{company + " competitors rivals alternatives comparison", false},
		{company + " recent news latest update", true},
	}

	var all []Result
	for _, q := range queries {
		items, err := c.search(ctx, q.q, 6, q.news)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}

	return Clean(all), nil
}

// Clean drops duplicates and empty snippets.
func Clean(items []Result) []Result {
	type key struct{ title, snippet string }
	seen := make(map[key]bool)
	var cleaned []Result
	for _, item := range items {
		k := key{item.Title, item.Snippet}
		if item.Snippet == "" || seen[k] {
			continue
		}
		cleaned = append(cleaned, item)
		seen[k] = true
	}
	return cleaned
}

// Notes formats results as prompt grounding, capped at max entries.
func Notes(items []Result, max int) string {
	if len(items) > max {
		items = items[:max]
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item.Title)
		b.WriteString(": ")
		b.WriteString(item.Snippet)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
