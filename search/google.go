// ABOUTME: This file queries the Google Custom Search JSON API for one coupon site
// ABOUTME: Maps search items to coupon candidates with the first pagemap thumbnail
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"coupon-herald/models"
)

const googleEndpoint = "https://www.googleapis.com/customsearch/v1"

// resultsPerSite caps how many items one site query may contribute.
const resultsPerSite = 10

// GoogleSource searches one coupon site through the Custom Search API.
type GoogleSource struct {
	apiKey   string
	cx       string
	site     string
	endpoint string
	client   *http.Client
}

// NewGoogleSource creates a source for one site restriction.
func NewGoogleSource(apiKey, cx, site string, timeout time.Duration) *GoogleSource {
	return &GoogleSource{
		apiKey:   apiKey,
		cx:       cx,
		site:     site,
		endpoint: googleEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Name returns the site restriction this source queries.
func (s *GoogleSource) Name() string {
	return s.site
}

type googleSearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
		Pagemap struct {
			CSEImage []struct {
				Src string `json:"src"`
			} `json:"cse_image"`
		} `json:"pagemap"`
	} `json:"items"`
}

// Fetch runs one "discount coupons" query restricted to the source's site.
func (s *GoogleSource) Fetch(ctx context.Context) ([]models.Coupon, error) {
	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.cx)
	params.Set("q", fmt.Sprintf("site:%s cupons desconto", s.site))
	params.Set("num", fmt.Sprintf("%d", resultsPerSite))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request for %s: %w", s.site, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", s.site, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search %s: unexpected status %d", s.site, resp.StatusCode)
	}

	var payload googleSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response for %s: %w", s.site, err)
	}

	coupons := make([]models.Coupon, 0, len(payload.Items))
	for _, item := range payload.Items {
		c := models.Coupon{
			Title:       item.Title,
			Description: item.Snippet,
			Link:        item.Link,
			Source:      s.site,
		}
		if len(item.Pagemap.CSEImage) > 0 {
			c.ImageURL = item.Pagemap.CSEImage[0].Src
		}
		coupons = append(coupons, c)
	}

	return coupons, nil
}
