package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"github.com/charmbracelet/log"
)

// CartKey is the fixed storage key for the serialized cart.
// The cart store is the only writer of this key.
const CartKey = "cart"

// CartStorage implements cart.Storage over a [KVRepository].
//
// The cart is stored as a JSON array of lines, mirroring the shape the
// storefront kept in browser local storage.
type CartStorage struct {
	kv     *KVRepository
	logger *log.Logger
}

// NewCartStorage creates a new CartStorage backed by the given repository
func NewCartStorage(kv *KVRepository, logger *log.Logger) *CartStorage {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CartStorage{kv: kv, logger: logger}
}

// Load retrieves the persisted cart lines.
//
// An absent key or a payload that fails to decode yields an empty cart, not
// an error: corrupt persisted state must never crash the application.
func (s *CartStorage) Load() ([]models.CartLine, error) {
	data, err := s.kv.Get(CartKey)
	if errors.Is(err, shared.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Warn("persisted cart is malformed, treating as empty", "error", err)
		return nil, nil
	}

	return lines, nil
}

// Save persists the given cart lines, replacing the previous state.
func (s *CartStorage) Save(lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	if err := s.kv.Put(CartKey, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}
