package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/JAX838/delight-vision-sounds/internal/cart"
	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
	tu "github.com/JAX838/delight-vision-sounds/internal/testing"
)

type memStorage struct {
	lines []models.CartLine
}

func (m *memStorage) Load() ([]models.CartLine, error) { return m.lines, nil }
func (m *memStorage) Save(l []models.CartLine) error   { m.lines = l; return nil }

func testRunner(catalog *tu.MockCatalog) (*Runner, *bytes.Buffer) {
	output := &bytes.Buffer{}
	store := cart.NewStore(&memStorage{}, shared.NewLogger(io.Discard))
	runner := NewRunner(RunnerOpts{
		Catalog: catalog,
		Logger:  shared.NewLogger(io.Discard),
		Output:  output,
		Cart:    store,
	})
	return runner, output
}

func catalogProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Studio Monitor", Price: 14500, Stock: 3,
			Specifications: []models.Specification{{Key: "Power", Value: "80W"}}},
		{ID: "p2", Name: "Subwoofer", Price: 22000, Stock: 0},
	}
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			catalog := &tu.MockCatalog{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				Catalog:    catalog,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{HTTPClient: nil})
			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			runner, output := testRunner(&tu.MockCatalog{})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("returns error for failed writer", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err == nil {
				t.Error("expected write error")
			}
		})
	})
}

func TestProductActions(t *testing.T) {
	ctx := context.Background()

	t.Run("list prints each product", func(t *testing.T) {
		runner, output := testRunner(&tu.MockCatalog{Products: catalogProducts()})

		cmd := productsCommand(runner)
		if err := cmd.Run(ctx, []string{"products", "list"}); err != nil {
			t.Fatalf("products list failed: %v", err)
		}

		result := output.String()
		if !strings.Contains(result, "Studio Monitor") || !strings.Contains(result, "KES 14,500") {
			t.Errorf("unexpected list output: %s", result)
		}
		if !strings.Contains(result, "[out of stock]") {
			t.Errorf("expected stock marker in output: %s", result)
		}
	})

	t.Run("show renders specifications", func(t *testing.T) {
		runner, output := testRunner(&tu.MockCatalog{Products: catalogProducts()})

		cmd := productsCommand(runner)
		if err := cmd.Run(ctx, []string{"products", "show", "p1"}); err != nil {
			t.Fatalf("products show failed: %v", err)
		}

		if !strings.Contains(output.String(), "Power: 80W") {
			t.Errorf("expected specification in output: %s", output.String())
		}
	})

	t.Run("show unknown product fails", func(t *testing.T) {
		runner, _ := testRunner(&tu.MockCatalog{Products: catalogProducts()})

		cmd := productsCommand(runner)
		err := cmd.Run(ctx, []string{"products", "show", "missing"})
		if !errors.Is(err, shared.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestCartActions(t *testing.T) {
	ctx := context.Background()

	t.Run("add then show", func(t *testing.T) {
		runner, output := testRunner(&tu.MockCatalog{Products: catalogProducts()})

		if err := cartCommand(runner).Run(ctx, []string{"cart", "add", "p1", "--quantity", "2"}); err != nil {
			t.Fatalf("cart add failed: %v", err)
		}
		if !strings.Contains(output.String(), "2 items") {
			t.Errorf("expected item count in output: %s", output.String())
		}

		output.Reset()
		if err := cartCommand(runner).Run(ctx, []string{"cart", "show"}); err != nil {
			t.Fatalf("cart show failed: %v", err)
		}
		if !strings.Contains(output.String(), "Total: KES 29,000") {
			t.Errorf("expected receipt total: %s", output.String())
		}
	})

	t.Run("add rejects out of stock", func(t *testing.T) {
		runner, output := testRunner(&tu.MockCatalog{Products: catalogProducts()})

		err := cartCommand(runner).Run(ctx, []string{"cart", "add", "p2"})
		if !errors.Is(err, shared.ErrOutOfStock) {
			t.Fatalf("expected ErrOutOfStock, got %v", err)
		}
		if !strings.Contains(output.String(), "This product is out of stock") {
			t.Errorf("expected out-of-stock message: %s", output.String())
		}
		if runner.cart.Count() != 0 {
			t.Errorf("cart should stay empty, got %d", runner.cart.Count())
		}
	})

	t.Run("update and clear", func(t *testing.T) {
		runner, output := testRunner(&tu.MockCatalog{Products: catalogProducts()})

		if err := cartCommand(runner).Run(ctx, []string{"cart", "add", "p1"}); err != nil {
			t.Fatalf("cart add failed: %v", err)
		}
		if err := cartCommand(runner).Run(ctx, []string{"cart", "update", "p1", "--quantity", "5"}); err != nil {
			t.Fatalf("cart update failed: %v", err)
		}
		if runner.cart.Count() != 5 {
			t.Errorf("expected count 5, got %d", runner.cart.Count())
		}

		output.Reset()
		if err := cartCommand(runner).Run(ctx, []string{"cart", "clear"}); err != nil {
			t.Fatalf("cart clear failed: %v", err)
		}
		if runner.cart.Count() != 0 {
			t.Errorf("expected empty cart, got %d", runner.cart.Count())
		}
	})

	t.Run("order prints deep link", func(t *testing.T) {
		runner, output := testRunner(&tu.MockCatalog{Products: catalogProducts()})

		if err := cartCommand(runner).Run(ctx, []string{"cart", "order", "p1"}); err != nil {
			t.Fatalf("cart order failed: %v", err)
		}
		if !strings.Contains(output.String(), "https://wa.me/254702252415?text=") {
			t.Errorf("expected WhatsApp link: %s", output.String())
		}
	})
}
