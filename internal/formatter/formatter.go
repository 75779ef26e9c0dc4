// package formatter provides functions to render prices and export catalog and cart data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/JAX838/delight-vision-sounds/internal/models"
)

// Price renders a price with thousands separators, e.g. 14500 -> "14,500".
//
// Fractional digits are kept only when present, matching how the web
// storefront renders Number(price).toLocaleString().
func Price(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Amount renders a currency-prefixed price, e.g. "KES 14,500".
func Amount(currency string, v float64) string {
	if currency == "" {
		return Price(v)
	}
	return fmt.Sprintf("%s %s", currency, Price(v))
}

// ExportCatalogToCSV converts products to CSV with columns: ID, Name, Category, Price, Stock, Specifications
func ExportCatalogToCSV(products []models.Product) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Category", "Price", "Stock", "Specifications"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, p := range products {
		record := []string{
			p.ID,
			p.Name,
			p.CategoryName(),
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Stock),
			joinSpecs(p.Specifications),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportProductToMarkdown converts a product to a Markdown detail page.
func ExportProductToMarkdown(p models.Product, currency string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", p.Name))

	if p.ImageURL != "" {
		buf.WriteString(fmt.Sprintf("![%s](%s)\n\n", p.Name, p.ImageURL))
	}

	buf.WriteString(fmt.Sprintf("**Category:** %s\n\n", p.CategoryName()))
	buf.WriteString(fmt.Sprintf("**Price:** %s\n\n", Amount(currency, p.Price)))

	if p.InStock() {
		buf.WriteString(fmt.Sprintf("**Stock:** %d available\n\n", p.Stock))
	} else {
		buf.WriteString("**Stock:** Out of stock\n\n")
	}

	if p.Description != "" {
		buf.WriteString(fmt.Sprintf("%s\n\n", p.Description))
	}

	if len(p.Specifications) > 0 {
		buf.WriteString("## Specifications\n\n")
		buf.WriteString("| Specification | Value |\n")
		buf.WriteString("|---|---|\n")
		for _, spec := range p.Specifications {
			buf.WriteString(fmt.Sprintf("| %s | %s |\n", spec.Key, spec.Value))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportCartToText renders the cart as a plain text receipt.
func ExportCartToText(lines []models.CartLine, currency string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("Shopping Cart\n")
	buf.WriteString("=============\n\n")

	if len(lines) == 0 {
		buf.WriteString("Your cart is empty.\n")
		return buf.Bytes(), nil
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
		buf.WriteString(fmt.Sprintf("%s\n", line.Name))
		buf.WriteString(fmt.Sprintf("  %d x %s = %s\n",
			line.Quantity, Amount(currency, line.UnitPrice), Amount(currency, line.Subtotal())))
	}

	buf.WriteString(fmt.Sprintf("\nTotal: %s\n", Amount(currency, total)))

	return buf.Bytes(), nil
}

// joinSpecs flattens specifications to a single CSV cell.
func joinSpecs(specs []models.Specification) string {
	if len(specs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		parts = append(parts, fmt.Sprintf("%s: %s", spec.Key, spec.Value))
	}
	return strings.Join(parts, "; ")
}
