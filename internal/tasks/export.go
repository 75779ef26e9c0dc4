package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/JAX838/delight-vision-sounds/internal/formatter"
	"github.com/JAX838/delight-vision-sounds/internal/models"
	"golang.org/x/time/rate"
)

// ExportOpts contains configuration for catalog exports.
type ExportOpts struct {
	Format     string  // Export format: json, csv, markdown
	OutputDir  string  // Base output directory (default: catalog_export_{epoch})
	NumWorkers int     // Concurrent workers (default: 5)
	RateLimit  float64 // Detail fetches per second (default: 5)
}

// ProductExportResult captures the outcome of exporting one product.
type ProductExportResult struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Files       []string `json:"files"`
	Success     bool     `json:"success"`
	Error       error    `json:"-"`
	ErrorText   string   `json:"error,omitempty"`
}

// CatalogExportResult summarizes a catalog export run.
type CatalogExportResult struct {
	TotalProducts     int                   `json:"total_products"`
	SuccessfulExports int                   `json:"successful_exports"`
	FailedExports     int                   `json:"failed_exports"`
	OutputDirectory   string                `json:"output_directory"`
	Format            string                `json:"format"`
	ManifestPath      string                `json:"-"`
	Results           []ProductExportResult `json:"results"`
}

type productExportJob struct {
	Product models.Product
}

// ExportCatalog exports the product catalog to disk with rate limiting and
// progress tracking.
//
// Products are fetched individually so each export carries the full detail
// record. The json and markdown formats write one file per product through a
// worker pool; csv writes a single combined catalog file. Partial failures
// are recorded per product and a manifest file summarizes the run.
func (e *ShopEngine) ExportCatalog(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	opts ExportOpts,
) (*CatalogExportResult, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("catalog_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	if opts.Format == "" {
		opts.Format = "json"
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	e.sendProgress(prog, fetchingCatalogUpdate(0, 0))
	products, err := e.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	result := &CatalogExportResult{
		TotalProducts:   len(products),
		OutputDirectory: opts.OutputDir,
		Format:          opts.Format,
		Results:         make([]ProductExportResult, 0, len(products)),
	}

	if opts.Format == "csv" {
		res := e.exportCombinedCSV(products, opts)
		result.Results = append(result.Results, res)
		if res.Success {
			result.SuccessfulExports = len(products)
		} else {
			result.FailedExports = len(products)
		}
		return e.writeManifest(prog, result, opts)
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan productExportJob, len(products))
	results := make(chan ProductExportResult, len(products))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		for i, p := range products {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				close(jobs)
				return
			}

			e.sendProgress(prog, fetchProductUpdate(i+1, len(products), p.Name))
			detail, err := e.catalog.GetProduct(ctx, p.ID)
			if err != nil {
				results <- ProductExportResult{
					ProductID:   p.ID,
					ProductName: p.Name,
					Success:     false,
					Error:       fmt.Errorf("failed to fetch product: %w", err),
				}
				continue
			}

			jobs <- productExportJob{Product: *detail}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		if res.Error != nil {
			res.ErrorText = res.Error.Error()
		}
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(products), res.ProductName))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(products), res.ProductName, res.Error))
		}
	}

	return e.writeManifest(prog, result, opts)
}

// exportWorker is a worker goroutine that exports products from the jobs channel.
func (e *ShopEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan productExportJob,
	results chan<- ProductExportResult,
	opts ExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- e.exportSingleProduct(job.Product, opts)
	}
}

// exportSingleProduct writes a single product to the appropriate format.
func (e *ShopEngine) exportSingleProduct(p models.Product, opts ExportOpts) ProductExportResult {
	result := ProductExportResult{
		ProductID:   p.ID,
		ProductName: p.Name,
		Success:     false,
		Files:       []string{},
	}

	switch opts.Format {
	case "markdown":
		data, err := formatter.ExportProductToMarkdown(p, e.currency)
		if err != nil {
			result.Error = fmt.Errorf("markdown export failed: %w", err)
			return result
		}
		mdPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.md", p.ID))
		if err := os.WriteFile(mdPath, data, 0644); err != nil {
			result.Error = fmt.Errorf("markdown write failed: %w", err)
			return result
		}
		result.Files = []string{mdPath}
		result.Success = true

	case "json":
		fallthrough
	default:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			result.Error = fmt.Errorf("JSON marshal failed: %w", err)
			return result
		}
		jsonPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.json", p.ID))
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			result.Error = fmt.Errorf("JSON write failed: %w", err)
			return result
		}
		result.Files = []string{jsonPath}
		result.Success = true
	}
	return result
}

// exportCombinedCSV writes the whole catalog to a single CSV file.
func (e *ShopEngine) exportCombinedCSV(products []models.Product, opts ExportOpts) ProductExportResult {
	result := ProductExportResult{
		ProductID:   "catalog",
		ProductName: "Catalog",
		Success:     false,
		Files:       []string{},
	}

	data, err := formatter.ExportCatalogToCSV(products)
	if err != nil {
		result.Error = fmt.Errorf("CSV export failed: %w", err)
		return result
	}

	csvPath := filepath.Join(opts.OutputDir, "catalog.csv")
	if err := os.WriteFile(csvPath, data, 0644); err != nil {
		result.Error = fmt.Errorf("CSV write failed: %w", err)
		return result
	}

	result.Files = []string{csvPath}
	result.Success = true
	return result
}

// writeManifest writes the export manifest and finalizes the result.
func (e *ShopEngine) writeManifest(
	prog chan<- ProgressUpdate,
	result *CatalogExportResult,
	opts ExportOpts,
) (*CatalogExportResult, error) {
	for i := range result.Results {
		if result.Results[i].Error != nil && result.Results[i].ErrorText == "" {
			result.Results[i].ErrorText = result.Results[i].Error.Error()
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return result, fmt.Errorf("export completed but failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}

	result.ManifestPath = manifestPath
	e.sendProgress(prog, writeManifestUpdate(manifestPath))
	return result, nil
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *ShopEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
