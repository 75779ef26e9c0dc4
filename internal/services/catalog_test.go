package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{
			ID:       "p1",
			Name:     "Studio Monitor",
			Price:    14500,
			Stock:    8,
			ImageURL: "https://cdn.example.com/monitor.jpg",
			Category: &models.Category{ID: "c1", Name: "Monitors"},
			Specifications: []models.Specification{
				{Key: "Power", Value: "300W"},
			},
		},
		{ID: "p2", Name: "XLR Cable", Price: 950, Stock: 0},
	}
}

func TestNewCatalogService(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		srv := NewCatalogService("", nil, 0)
		if srv.baseURL != "http://localhost:5000" {
			t.Errorf("expected default base URL, got %s", srv.baseURL)
		}
		if srv.httpClient != http.DefaultClient {
			t.Error("expected http.DefaultClient to be used")
		}
	})

	t.Run("CustomClient", func(t *testing.T) {
		customClient := &http.Client{}
		srv := NewCatalogService("http://example.com", customClient, 10)
		if srv.httpClient != customClient {
			t.Error("expected custom client to be used")
		}
	})
}

func TestCatalogServiceListProducts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/products" {
				t.Errorf("expected path /api/products, got %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(catalogFixture())
		}))
		defer server.Close()

		srv := NewCatalogService(server.URL, nil, 100)
		products, err := srv.ListProducts(context.Background())
		if err != nil {
			t.Fatalf("ListProducts failed: %v", err)
		}

		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].CategoryName() != "Monitors" {
			t.Errorf("expected nested category to decode, got %s", products[0].CategoryName())
		}
		if products[1].CategoryName() != "Uncategorized" {
			t.Errorf("expected missing category fallback, got %s", products[1].CategoryName())
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		srv := NewCatalogService(server.URL, nil, 100)
		if _, err := srv.ListProducts(context.Background()); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestCatalogServiceGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products/p1":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(catalogFixture()[0])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	srv := NewCatalogService(server.URL, nil, 100)

	t.Run("Found", func(t *testing.T) {
		product, err := srv.GetProduct(context.Background(), "p1")
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if product.Name != "Studio Monitor" || len(product.Specifications) != 1 {
			t.Errorf("unexpected product: %+v", product)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if _, err := srv.GetProduct(context.Background(), "missing"); !errors.Is(err, shared.ErrProductNotFound) {
			t.Errorf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("EmptyID", func(t *testing.T) {
		if _, err := srv.GetProduct(context.Background(), ""); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestCatalogServiceSearchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "studio monitor" {
			t.Errorf("expected search query to be escaped and forwarded, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalogFixture()[:1])
	}))
	defer server.Close()

	srv := NewCatalogService(server.URL, nil, 100)
	products, err := srv.SearchProducts(context.Background(), "studio monitor")
	if err != nil {
		t.Fatalf("SearchProducts failed: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("expected 1 product, got %d", len(products))
	}
}

func TestCatalogServiceListCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/categories" {
			t.Errorf("expected path /api/categories, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Category{{ID: "c1", Name: "Monitors"}})
	}))
	defer server.Close()

	srv := NewCatalogService(server.URL, nil, 100)
	categories, err := srv.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Monitors" {
		t.Errorf("unexpected categories: %v", categories)
	}
}

func TestCatalogServiceContextCancellation(t *testing.T) {
	srv := NewCatalogService("http://example.invalid", nil, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := srv.ListProducts(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}
