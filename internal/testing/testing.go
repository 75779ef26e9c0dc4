// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

// MockCatalog is a configurable test double for [services.Catalog].
type MockCatalog struct {
	Products      []models.Product
	Categories    []models.Category
	ListErr       error
	GetErr        error
	SearchErr     error
	CategoriesErr error
	GetCalls      int
}

func (m *MockCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Products, nil
}

func (m *MockCatalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Products {
		if m.Products[i].ID == id {
			p := m.Products[i]
			return &p, nil
		}
	}
	return nil, shared.ErrProductNotFound
}

func (m *MockCatalog) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.Products, nil
}

func (m *MockCatalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	if m.CategoriesErr != nil {
		return nil, m.CategoriesErr
	}
	return m.Categories, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
