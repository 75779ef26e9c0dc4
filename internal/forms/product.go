package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/services"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

// ProductForm holds the admin product-edit form state.
//
// Price and Stock are kept as entered text until validation so a half-typed
// form never loses input. Specs is decoupled from the scalar fields and
// edited through its own operations.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	Stock       string
	CategoryID  string
	ImagePath   string
	Specs       *SpecEditor
}

// NewProductForm creates a form hydrated from an existing product.
func NewProductForm(p models.Product) *ProductForm {
	form := &ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Stock:       strconv.Itoa(p.Stock),
		Specs:       NewSpecEditor(p.Specifications),
	}
	if p.Category != nil {
		form.CategoryID = p.Category.ID
	}
	return form
}

// Validate checks the required fields before any network call is made.
// Name and price are required; a rejected form causes no submission at all.
func (f *ProductForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Price) == "" {
		return fmt.Errorf("%w: name and price are required", shared.ErrValidation)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return fmt.Errorf("%w: price must be a number", shared.ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must be non-negative", shared.ErrValidation)
	}

	if strings.TrimSpace(f.Stock) != "" {
		stock, err := strconv.Atoi(strings.TrimSpace(f.Stock))
		if err != nil {
			return fmt.Errorf("%w: stock must be an integer", shared.ErrValidation)
		}
		if stock < 0 {
			return fmt.Errorf("%w: stock must be non-negative", shared.ErrValidation)
		}
	}

	return nil
}

// Update converts the validated form into its transport representation.
func (f *ProductForm) Update() (services.ProductUpdate, error) {
	if err := f.Validate(); err != nil {
		return services.ProductUpdate{}, err
	}

	specs, err := f.Specs.Serialize()
	if err != nil {
		return services.ProductUpdate{}, err
	}

	return services.ProductUpdate{
		Name:           strings.TrimSpace(f.Name),
		Description:    f.Description,
		Price:          strings.TrimSpace(f.Price),
		Stock:          strings.TrimSpace(f.Stock),
		CategoryID:     f.CategoryID,
		Specifications: specs,
		ImagePath:      f.ImagePath,
	}, nil
}
