package server

// In-memory item store backing the catalog emulator

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tturner/stockdeck/internal/catalog"
)

// Store holds items in memory with sequential service-assigned ids.
type Store struct {
	mu     sync.Mutex
	items  map[int64]catalog.Item
	order  []int64
	nextID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		items:  make(map[int64]catalog.Item),
		nextID: 1,
	}
}

// LoadSeed populates the store from a YAML file holding a list of
// items. Seed ids are ignored; the store assigns its own.
func (s *Store) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var seed struct {
		Items []catalog.ItemInput `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	for i, in := range seed.Items {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("seed item %d: %s", i, err)
		}
		s.Create(in)
	}
	return nil
}

// All returns every item in insertion order.
func (s *Store) All() []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Get returns the item with the given id.
func (s *Store) Get(id int64) (catalog.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	return item, ok
}

// Create stores a new item and returns it with its assigned id.
func (s *Store) Create(in catalog.ItemInput) catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := catalog.Item{
		ID:          s.nextID,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
	}
	s.nextID++
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return item
}

// Update replaces the fields of an existing item.
func (s *Store) Update(id int64, in catalog.ItemInput) (catalog.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return catalog.Item{}, false
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Quantity = in.Quantity
	item.Price = in.Price
	s.items[id] = item
	return item, true
}

// Delete removes an item. It reports whether the id existed.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Query filters by price bounds and sorts by the given field. sortBy
// falls back to id, order to ascending, matching the real service.
func (s *Store) Query(minPrice, maxPrice *float64, sortBy, order string) []catalog.Item {
	items := s.All()

	filtered := items[:0:0]
	for _, it := range items {
		if minPrice != nil && it.Price < *minPrice {
			continue
		}
		if maxPrice != nil && it.Price > *maxPrice {
			continue
		}
		filtered = append(filtered, it)
	}

	less := func(a, b catalog.Item) bool { return a.ID < b.ID }
	if sortBy == "price" {
		less = func(a, b catalog.Item) bool { return a.Price < b.Price }
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if order == "desc" {
			return less(filtered[j], filtered[i])
		}
		return less(filtered[i], filtered[j])
	})
	return filtered
}

// LowStock returns items whose quantity is at or below threshold.
func (s *Store) LowStock(threshold int) []catalog.Item {
	var out []catalog.Item
	for _, it := range s.All() {
		if it.Quantity <= threshold {
			out = append(out, it)
		}
	}
	return out
}
