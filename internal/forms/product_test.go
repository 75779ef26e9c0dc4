package forms

import (
	"errors"
	"testing"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

func editedProduct() models.Product {
	return models.Product{
		ID:          "p1",
		Name:        "Studio Monitor",
		Description: "Active nearfield monitor",
		Price:       14500,
		Stock:       8,
		Category:    &models.Category{ID: "c1", Name: "Monitors"},
		Specifications: []models.Specification{
			{Key: "Power", Value: "300W"},
		},
	}
}

func TestNewProductForm(t *testing.T) {
	form := NewProductForm(editedProduct())

	if form.Name != "Studio Monitor" || form.Price != "14500" || form.Stock != "8" {
		t.Errorf("unexpected hydrated fields: %+v", form)
	}
	if form.CategoryID != "c1" {
		t.Errorf("expected category id c1, got %s", form.CategoryID)
	}
	if form.Specs.Len() != 1 {
		t.Errorf("expected hydrated spec editor, got %d entries", form.Specs.Len())
	}

	t.Run("UncategorizedProduct", func(t *testing.T) {
		p := editedProduct()
		p.Category = nil
		p.Specifications = nil

		form := NewProductForm(p)
		if form.CategoryID != "" {
			t.Errorf("expected empty category id, got %s", form.CategoryID)
		}
		if form.Specs.Len() != 0 {
			t.Errorf("expected empty spec editor, got %d entries", form.Specs.Len())
		}
	})
}

func TestProductFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductForm)
		wantErr bool
	}{
		{"Valid", func(f *ProductForm) {}, false},
		{"MissingName", func(f *ProductForm) { f.Name = "  " }, true},
		{"MissingPrice", func(f *ProductForm) { f.Price = "" }, true},
		{"NonNumericPrice", func(f *ProductForm) { f.Price = "cheap" }, true},
		{"NegativePrice", func(f *ProductForm) { f.Price = "-5" }, true},
		{"NonNumericStock", func(f *ProductForm) { f.Stock = "many" }, true},
		{"NegativeStock", func(f *ProductForm) { f.Stock = "-1" }, true},
		{"EmptyStockAllowed", func(f *ProductForm) { f.Stock = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewProductForm(editedProduct())
			tt.mutate(form)

			err := form.Validate()
			if tt.wantErr {
				if !errors.Is(err, shared.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestProductFormUpdate(t *testing.T) {
	t.Run("CarriesSerializedSpecs", func(t *testing.T) {
		form := NewProductForm(editedProduct())
		pos := form.Specs.Add()
		form.Specs.Update(pos, FieldKey, "Voltage")
		form.Specs.Update(pos, FieldValue, "220V")

		update, err := form.Update()
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		want := `[{"key":"Power","value":"300W"},{"key":"Voltage","value":"220V"}]`
		if string(update.Specifications) != want {
			t.Errorf("unexpected serialized specs: %s", update.Specifications)
		}
		if update.Name != "Studio Monitor" || update.Price != "14500" {
			t.Errorf("unexpected transport fields: %+v", update)
		}
	})

	t.Run("InvalidFormNeverConverts", func(t *testing.T) {
		form := NewProductForm(editedProduct())
		form.Name = ""

		if _, err := form.Update(); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}
