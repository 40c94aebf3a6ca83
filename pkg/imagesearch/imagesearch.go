// Package imagesearch is the thin photo-search collaborator over the Pexels
// API. The core only ever stores the chosen URL string; everything else here
// is presentation material for the picker.
package imagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.pexels.com/v1/search"

// ErrNoAPIKey is returned when the client has no key configured.
var ErrNoAPIKey = errors.New("imagesearch: pexels api key not configured")

// Photo is one search hit.
type Photo struct {
	URL          string
	ThumbnailURL string
	Description  string
	Attribution  string
}

// Client calls the Pexels photo search endpoint.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client using the given API key.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type response struct {
	Photos []struct {
		Alt          string `json:"alt"`
		Photographer string `json:"photographer"`
		Src          struct {
			Large  string `json:"large"`
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// Search returns up to perPage landscape photos for the query. The query is
// suffixed with "travel" to bias results toward trip imagery.
func (c *Client) Search(ctx context.Context, query string, perPage int) ([]Photo, error) {
	if c.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if perPage <= 0 {
		perPage = 20
	}
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	q := url.Values{}
	q.Set("query", query+" travel")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("imagesearch: build request: %w", err)
	}
	req.Header.Set("Authorization", c.APIKey)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagesearch: search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imagesearch: search %q: unexpected status %s", query, resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("imagesearch: decode response: %w", err)
	}

	photos := make([]Photo, 0, len(body.Photos))
	for _, p := range body.Photos {
		photos = append(photos, Photo{
			URL:          p.Src.Large,
			ThumbnailURL: p.Src.Medium,
			Description:  p.Alt,
			Attribution:  p.Photographer,
		})
	}
	return photos, nil
}
