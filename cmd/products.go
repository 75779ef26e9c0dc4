package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/JAX838/delight-vision-sounds/internal/formatter"
	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"github.com/JAX838/delight-vision-sounds/internal/tasks"
)

// ProductsList lists products in the catalog with an optional limit.
func (r *Runner) ProductsList(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if r.catalog == nil {
		return fmt.Errorf("uninitialized catalog service")
	}

	r.logger.Infof("listing products with limit %v", limit)

	products, err := r.catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	if useJSON {
		return r.writeJSON(products, pretty)
	}

	for _, p := range products {
		r.writePlain("%s\n", r.productLine(p))
	}
	r.writePlainln("%d products", len(products))
	return nil
}

// ProductsShow shows a single product with its specifications.
func (r *Runner) ProductsShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if id == "" {
		return fmt.Errorf("%w: product id", shared.ErrMissingArgument)
	}

	product, err := r.catalog.GetProduct(ctx, id)
	if errors.Is(err, shared.ErrProductNotFound) {
		r.writePlainln("Product not found: %s", id)
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to fetch product: %w", err)
	}

	if useJSON {
		return r.writeJSON(product, pretty)
	}

	r.writePlain("%s\n", product.Name)
	r.writePlain("%s • %s\n", formatter.Amount(r.config.Store.Currency, product.Price), product.CategoryName())
	if product.InStock() {
		r.writePlain("%d in stock\n", product.Stock)
	} else {
		r.writePlain("Out of stock\n")
	}
	if product.Description != "" {
		r.writePlainln("%s", product.Description)
	}
	if len(product.Specifications) > 0 {
		r.writePlainln("Specifications:")
		for _, spec := range product.Specifications {
			r.writePlain("  %s: %s\n", spec.Key, spec.Value)
		}
	}
	return nil
}

// ProductsSearch searches products by name or description.
func (r *Runner) ProductsSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")

	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	r.logger.Infof("searching products for %q", query)

	products, err := r.catalog.SearchProducts(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to search products: %w", err)
	}

	if useJSON {
		return r.writeJSON(products, false)
	}

	if len(products) == 0 {
		r.writePlain("No products matched %q\n", query)
		return nil
	}
	for _, p := range products {
		r.writePlain("%s\n", r.productLine(p))
	}
	return nil
}

// ProductsCategories lists the store's product categories.
func (r *Runner) ProductsCategories(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	categories, err := r.catalog.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if useJSON {
		return r.writeJSON(categories, false)
	}

	for _, c := range categories {
		r.writePlain("%s  %s\n", c.ID, c.Name)
	}
	return nil
}

// ProductsExport exports the catalog to disk with per-product progress.
func (r *Runner) ProductsExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	outputDir := cmd.String("output")
	workers := cmd.Int("workers")

	r.logger.Info("starting catalog export", "format", format)
	r.writePlain("Exporting catalog...\n")

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.FetchCatalog, tasks.FetchProduct:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.ExportProduct:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	engine := r.shopEngine(nil)
	result, err := engine.ExportCatalog(ctx, progressCh, tasks.ExportOpts{
		Format:     format,
		OutputDir:  outputDir,
		NumWorkers: workers,
	})
	close(progressCh)

	if err != nil {
		return err
	}

	r.writePlain("\n═══════════════════════════════════════\n")
	r.writePlain("Export Complete!\n")
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("Products: %d\n", result.TotalProducts)
	r.writePlain("Succeeded: %d\n", result.SuccessfulExports)
	r.writePlain("Failed: %d\n", result.FailedExports)
	r.writePlain("Output: %s\n", result.OutputDirectory)
	r.writePlain("Manifest: %s\n", result.ManifestPath)

	if result.FailedExports > 0 {
		r.writePlain("\nFailed exports:\n")
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  - %s (%s)\n", res.ProductName, res.ErrorText)
			}
		}
	}

	return nil
}

func (r *Runner) productLine(p models.Product) string {
	line := fmt.Sprintf("%s  %s  %s  (%s)",
		p.ID, p.Name, formatter.Amount(r.config.Store.Currency, p.Price), p.CategoryName())
	if !p.InStock() {
		line += "  [out of stock]"
	}
	return line
}
