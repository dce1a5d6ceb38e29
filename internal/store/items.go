// Package store holds the in-memory item collection shared across requests.
// The store is volatile: contents do not survive a process restart.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an item is not found in the store.
var ErrNotFound = errors.New("not found")

// Item is the sole domain entity managed by the CRUD endpoints.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Store is a mutex-guarded in-memory item collection. Every request handler
// shares one instance, so all reads and writes go through the lock.
// Insertion order is preserved for listing.
type Store struct {
	mu    sync.Mutex
	items map[string]*Item
	order []string

	now func() time.Time // overridable for tests
}

// New creates an empty store.
func New() *Store {
	return &Store{
		items: make(map[string]*Item),
		now:   time.Now,
	}
}

// Seed inserts n sample items, mirroring the demo data created at startup.
func (s *Store) Seed(n int) {
	for i := 1; i <= n; i++ {
		s.Create(
			fmt.Sprintf("Sample Item %d", i),
			fmt.Sprintf("A sample item number %d", i),
		)
	}
}

// List returns copies of all items in insertion order.
func (s *Store) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, *s.items[id])
	}
	return items
}

// Create stores a new item under a freshly generated id.
// Name validation happens at the HTTP layer; ids are never reused.
func (s *Store) Create(name, description string) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := &Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   s.now().UTC(),
	}
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return *item
}

// Get returns the item with the given id, or ErrNotFound.
func (s *Store) Get(id string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return *item, nil
}

// Update applies a partial update to an existing item: name only when
// non-empty, description whenever the field was present in the request.
// The update timestamp is set on every successful call.
func (s *Store) Update(id string, name, description *string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}

	if name != nil && *name != "" {
		item.Name = *name
	}
	if description != nil {
		item.Description = *description
	}
	now := s.now().UTC()
	item.UpdatedAt = &now

	return *item, nil
}

// Delete removes the item with the given id, or returns ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of stored items.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
