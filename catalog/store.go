package catalog

import (
	"errors"
	"sync"

	"github.com/everscale-dev/storefront-api/models"
)

// ErrNotFound is returned by lookups and mutations for ids the catalog does
// not hold.
var ErrNotFound = errors.New("catalog: product not found")

// Store holds the working product collection in memory. The seed collection
// is generated at construction; EnrichFromRemote may later prepend fetched
// products. Admin mutations touch only this in-memory collection and are
// lost on restart — a known limitation carried over from the source system,
// not a contract (see DESIGN.md).
type Store struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewStore builds a catalog holding the generated seed collection.
func NewStore() *Store {
	return &Store{products: Seed()}
}

// Products returns a copy of the collection in its current order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks a product up by id.
func (s *Store) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Prepend puts products ahead of the existing collection. Remote items are
// not deduplicated against the seed set; both sources keep their ids.
func (s *Store) Prepend(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(append([]models.Product{}, products...), s.products...)
}

// Create adds a product to the front of the collection.
func (s *Store) Create(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]models.Product{p}, s.products...)
}

// Update overwrites the product with p's id.
func (s *Store) Update(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the product with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len reports the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
