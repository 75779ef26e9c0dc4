package formatter

import (
	"strings"
	"testing"

	"github.com/JAX838/delight-vision-sounds/internal/models"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1,000"},
		{14500, "14,500"},
		{1234567, "1,234,567"},
		{14500.5, "14,500.5"},
		{-2500, "-2,500"},
	}

	for _, tt := range tests {
		if got := Price(tt.in); got != tt.want {
			t.Errorf("Price(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAmount(t *testing.T) {
	if got := Amount("KES", 14500); got != "KES 14,500" {
		t.Errorf("unexpected amount: %q", got)
	}
	if got := Amount("", 14500); got != "14,500" {
		t.Errorf("empty currency should render bare price, got %q", got)
	}
}

func TestExportCatalogToCSV(t *testing.T) {
	products := []models.Product{
		{
			ID:       "p1",
			Name:     "Studio Monitor",
			Price:    14500,
			Stock:    8,
			Category: &models.Category{ID: "c1", Name: "Monitors"},
			Specifications: []models.Specification{
				{Key: "Power", Value: "300W"},
				{Key: "Weight", Value: "5kg"},
			},
		},
		{ID: "p2", Name: "Cable", Price: 950, Stock: 0},
	}

	data, err := ExportCatalogToCSV(products)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := string(data)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 records, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Power: 300W; Weight: 5kg") {
		t.Errorf("specifications not flattened: %s", lines[1])
	}
	if !strings.Contains(lines[2], "Uncategorized") {
		t.Errorf("missing category fallback: %s", lines[2])
	}
}

func TestExportProductToMarkdown(t *testing.T) {
	p := models.Product{
		ID:          "p1",
		Name:        "Studio Monitor",
		Description: "Active nearfield monitor",
		Price:       14500,
		Stock:       8,
		ImageURL:    "https://cdn.example.com/monitor.jpg",
		Specifications: []models.Specification{
			{Key: "Power", Value: "300W"},
		},
	}

	data, err := ExportProductToMarkdown(p, "KES")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"# Studio Monitor",
		"**Price:** KES 14,500",
		"| Power | 300W |",
		"![Studio Monitor](https://cdn.example.com/monitor.jpg)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}

	t.Run("OutOfStock", func(t *testing.T) {
		p.Stock = 0
		data, err := ExportProductToMarkdown(p, "KES")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if !strings.Contains(string(data), "Out of stock") {
			t.Error("expected out of stock marker")
		}
	})
}

func TestExportCartToText(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		data, err := ExportCartToText(nil, "KES")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if !strings.Contains(string(data), "Your cart is empty") {
			t.Error("expected empty cart message")
		}
	})

	t.Run("Receipt", func(t *testing.T) {
		lines := []models.CartLine{
			{ProductID: "p1", Name: "Studio Monitor", UnitPrice: 1000, Quantity: 2},
			{ProductID: "p2", Name: "Amplifier", UnitPrice: 500, Quantity: 3},
		}

		data, err := ExportCartToText(lines, "KES")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}

		out := string(data)
		if !strings.Contains(out, "2 x KES 1,000 = KES 2,000") {
			t.Errorf("missing line subtotal:\n%s", out)
		}
		if !strings.Contains(out, "Total: KES 3,500") {
			t.Errorf("missing total:\n%s", out)
		}
	})
}
