// package services defines interfaces and HTTP clients for the upstream store API
//
// Catalog reads, admin mutations, and the WhatsApp order handoff.
package services

import (
	"context"

	"github.com/JAX838/delight-vision-sounds/internal/models"
)

// Catalog defines read access to the product catalog.
type Catalog interface {
	// ListProducts retrieves all products in the catalog.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// GetProduct retrieves a single product by id.
	// Returns an error wrapping [shared.ErrProductNotFound] when the id does not exist upstream.
	GetProduct(ctx context.Context, id string) (*models.Product, error)

	// SearchProducts retrieves products matching the given query.
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)

	// ListCategories retrieves all product categories.
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// ProductUpdate is the transport representation of an admin product edit.
//
// Price and Stock stay textual: they are forwarded as form fields exactly as
// validated, and the API parses them server-side. Specifications carry the
// editor's serialized JSON array. ImagePath, when set, names a local file
// uploaded as the multipart image part.
type ProductUpdate struct {
	Name           string
	Description    string
	Price          string
	Stock          string
	CategoryID     string
	Specifications []byte
	ImagePath      string
}
