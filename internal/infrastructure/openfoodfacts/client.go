// Package openfoodfacts implements the bulk branded-product store against an
// Open Food Facts compatible HTTP API.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/nutrilens/backend/internal/domain"
)

// Client handles communication with the branded-food API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// searchResponse is the wire shape of a product search.
type searchResponse struct {
	Products []productRow `json:"products"`
	Count    int          `json:"count"`
}

// productResponse is the wire shape of a single-product lookup.
type productResponse struct {
	Status  int         `json:"status"`
	Product *productRow `json:"product"`
}

// productRow is the source-specific row shape. It never travels past this
// package: rows convert to domain types at the adapter boundary.
type productRow struct {
	Code            string         `json:"code"`
	ProductName     string         `json:"product_name"`
	Brands          string         `json:"brands"`
	Categories      string         `json:"categories"`
	NutriscoreGrade string         `json:"nutriscore_grade"`
	ServingSize     string         `json:"serving_size"`
	ScansN          int64          `json:"scans_n"`
	Creator         string         `json:"creator"`
	Nutriments      map[string]any `json:"nutriments"`
}

// NewClient creates a branded-store client. The public API asks clients to
// stay under roughly 100 requests per minute for search.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(100.0/60.0), 10),
	}
}

// SetDebug enables request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "NutriLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	return resp, nil
}

// Search queries branded products and converts them to the common result
// shape. Retries up to 3 times on transient failures.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/cgi/search.pl", c.baseURL)
	params := url.Values{}
	params.Add("search_terms", query)
	params.Add("search_simple", "1")
	params.Add("json", "1")
	params.Add("page_size", strconv.Itoa(limit))

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[OFF] search error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[OFF] search status %d (attempt %d)", resp.StatusCode, attempt)
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrStoreFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		results := make([]domain.SearchResult, 0, len(searchResp.Products))
		for _, row := range searchResp.Products {
			results = append(results, row.toSearchResult())
		}
		if c.debug {
			log.Printf("[OFF] %d results for %q", len(results), query)
		}
		return results, nil
	}

	return nil, lastErr
}

// GetByCode retrieves one product's full detail row.
func (c *Client) GetByCode(ctx context.Context, code string) (*domain.BrandedFood, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(code))

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrStoreFailure, resp.StatusCode, string(body))
	}

	var productResp productResponse
	if err := json.NewDecoder(resp.Body).Decode(&productResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if productResp.Status != 1 || productResp.Product == nil {
		return nil, domain.ErrFoodNotFound
	}

	return productResp.Product.toBrandedFood(), nil
}
