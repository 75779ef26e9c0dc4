// HTTP implementation of [Catalog] against the store API.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"golang.org/x/time/rate"
)

const defaultRateLimit = 5.0

// CatalogService implements [Catalog] over the store's public JSON API.
//
// Requests are rate limited client-side so catalog exports and eager TUI
// navigation cannot hammer the API.
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewCatalogService creates a catalog client for the given base URL.
func NewCatalogService(baseURL string, client *http.Client, rateLimit float64) *CatalogService {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if rateLimit <= 0 {
		rateLimit = defaultRateLimit
	}

	return &CatalogService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(rateLimit), 1),
	}
}

// doRequest performs a rate-limited GET against the store API and decodes the
// JSON response into result. Returns the HTTP status code so callers can map
// not-found responses to their own sentinel.
func (s *CatalogService) doRequest(ctx context.Context, endpoint string, result any) (int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	apiURL := s.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("%w: status %d for %s", shared.ErrAPIRequest, resp.StatusCode, endpoint)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// ListProducts retrieves all products in the catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if _, err := s.doRequest(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a single product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product id", shared.ErrMissingArgument)
	}

	var product models.Product
	endpoint := fmt.Sprintf("/api/products/%s", url.PathEscape(id))

	status, err := s.doRequest(ctx, endpoint, &product)
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", shared.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// SearchProducts retrieves products matching the given query.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	endpoint := fmt.Sprintf("/api/products?search=%s", url.QueryEscape(query))

	var products []models.Product
	if _, err := s.doRequest(ctx, endpoint, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories retrieves all product categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if _, err := s.doRequest(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
