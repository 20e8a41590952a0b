// Package client implements the upstream product catalog API client.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/catalog/domain"
)

// DefaultBaseURL points at the public Fake Store API
const DefaultBaseURL = "https://fakestoreapi.com"

const requestTimeout = 10 * time.Second

// ErrNotFound reports a product id unknown to the upstream catalog
var ErrNotFound = fmt.Errorf("product not found")

// Client fetches products over HTTP from the catalog API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a catalog client. An empty baseURL selects DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   requestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// FetchAll retrieves the full product list
func (c *Client) FetchAll(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return products, nil
}

// FetchByID retrieves a single product by its catalog id
func (c *Client) FetchByID(ctx context.Context, id int64) (*domain.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	// The upstream API answers unknown ids with an empty 200 body on some
	// deployments, which decodes to the zero value.
	if product.ID == 0 {
		return nil, ErrNotFound
	}

	return &product, nil
}
