package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchCatalog Phase = iota
	FetchProduct
	ExportProduct
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case FetchCatalog:
		return "fetch_catalog"
	case FetchProduct:
		return "fetch_product"
	case ExportProduct:
		return "export_product"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

func fetchingCatalogUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchCatalog,
		Step:    step,
		Total:   total,
		Message: "Fetching product catalog...",
	}
}

func fetchProductUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchProduct,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching product (%s)...", name),
	}
}

func exportCompletedUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportProduct,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Exported %s", name),
	}
}

func exportFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportProduct,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed to export %s: %v", name, err),
		Data:    err,
	}
}

func writeManifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Wrote manifest to %s", path),
	}
}
