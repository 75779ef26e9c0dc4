package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")

	// API and catalog errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")

	// Storage errors
	ErrKeyNotFound = fmt.Errorf("key not found")

	// Cart errors
	ErrOutOfStock      = fmt.Errorf("product is out of stock")
	ErrInvalidQuantity = fmt.Errorf("quantity must be a positive integer")

	// Form and editor errors
	ErrValidation      = fmt.Errorf("validation failed")
	ErrInvalidPosition = fmt.Errorf("position out of range")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
