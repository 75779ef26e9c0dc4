// package cart implements the session-scoped shopping cart store.
//
// The Store is the single source of truth for the cart, shared by every view
// in the session. Lines are kept in insertion order with at most one line per
// product; every mutation persists synchronously through a [Storage]
// collaborator and then broadcasts the resulting snapshot to subscribers, so
// all views observe the same state after any change.
package cart

import (
	"fmt"
	"sync"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"github.com/charmbracelet/log"
)

// Storage persists the serialized cart between sessions under a fixed key.
//
// Load must report absent state as an empty slice, not an error; malformed
// stored data is also decoded to an empty slice so a corrupt cart can never
// crash the application.
type Storage interface {
	Load() ([]models.CartLine, error)
	Save(lines []models.CartLine) error
}

// Snapshot is an immutable view of the cart handed to callers and subscribers.
type Snapshot struct {
	Lines []models.CartLine
	Total float64
	Count int
}

// Subscriber receives the cart snapshot after every mutation.
type Subscriber func(Snapshot)

// Store holds the cart lines and coordinates persistence and broadcast.
type Store struct {
	mu          sync.Mutex
	lines       []models.CartLine
	storage     Storage
	logger      *log.Logger
	subscribers []Subscriber
}

// NewStore creates a Store rehydrated from the given storage.
//
// A load failure degrades to an empty cart with a warning; it is never fatal.
func NewStore(storage Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	s := &Store{storage: storage, logger: logger}

	lines, err := storage.Load()
	if err != nil {
		logger.Warn("failed to load persisted cart, starting empty", "error", err)
		lines = nil
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			logger.Warn("discarding invalid persisted cart line", "error", err)
			continue
		}
		s.lines = append(s.lines, line)
	}

	return s
}

// Subscribe registers a subscriber that is invoked with the new snapshot
// after every mutation. Subscribers are called synchronously, in
// registration order, with the same snapshot value.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// AddItem adds quantity units of the product to the cart.
//
// If a line for the product already exists its quantity is incremented,
// never duplicated. The store does not enforce the product's stock cap;
// that policy belongs to the calling view.
func (s *Store) AddItem(p models.Product, quantity int) (Snapshot, error) {
	if quantity < 1 {
		return s.Snapshot(), fmt.Errorf("%w: got %d", shared.ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	if i := s.index(p.ID); i >= 0 {
		s.lines[i].Quantity += quantity
	} else {
		s.lines = append(s.lines, models.NewCartLine(p, quantity))
	}
	snap, err := s.commit()
	s.mu.Unlock()

	s.broadcast(snap)
	return snap, err
}

// RemoveItem deletes the line for the given product id.
// Removing an absent product is a no-op, not an error.
func (s *Store) RemoveItem(productID string) (Snapshot, error) {
	s.mu.Lock()
	i := s.index(productID)
	if i < 0 {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}

	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	snap, err := s.commit()
	s.mu.Unlock()

	s.broadcast(snap)
	return snap, err
}

// UpdateQuantity sets the line's quantity to the given absolute value.
//
// A quantity of zero or less removes the line. An unknown product id is a
// logged no-op: the store must not invent a line it was never given.
func (s *Store) UpdateQuantity(productID string, quantity int) (Snapshot, error) {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}

	s.mu.Lock()
	i := s.index(productID)
	if i < 0 {
		s.logger.Debug("update for product not in cart ignored", "product_id", productID)
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}

	s.lines[i].Quantity = quantity
	snap, err := s.commit()
	s.mu.Unlock()

	s.broadcast(snap)
	return snap, err
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() (Snapshot, error) {
	s.mu.Lock()
	s.lines = nil
	snap, err := s.commit()
	s.mu.Unlock()

	s.broadcast(snap)
	return snap, err
}

// Total returns the sum of unit price times quantity over current lines,
// recomputed on every call.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.lines)
}

// Count returns the total quantity across all lines (for badge display),
// not the number of lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return count(s.lines)
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.lines)
}

// Snapshot returns the current cart state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// index returns the position of the line for productID, or -1.
func (s *Store) index(productID string) int {
	for i, line := range s.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// commit persists the current lines and builds the post-mutation snapshot.
//
// The in-memory state is kept even when persistence fails: the session's
// cart stays usable and the error surfaces to the caller.
func (s *Store) commit() (Snapshot, error) {
	snap := s.snapshotLocked()

	if err := s.storage.Save(copyLines(s.lines)); err != nil {
		s.logger.Error("failed to persist cart", "error", err)
		return snap, fmt.Errorf("failed to persist cart: %w", err)
	}

	return snap, nil
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Lines: copyLines(s.lines),
		Total: total(s.lines),
		Count: count(s.lines),
	}
}

func (s *Store) broadcast(snap Snapshot) {
	s.mu.Lock()
	subscribers := make([]Subscriber, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}
}

func total(lines []models.CartLine) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Subtotal()
	}
	return sum
}

func count(lines []models.CartLine) int {
	var sum int
	for _, line := range lines {
		sum += line.Quantity
	}
	return sum
}

func copyLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}
