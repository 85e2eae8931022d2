package memory

import (
	"sync"

	"storefront/pkg/cart/domain/model"
)

// CartStore keeps one cart per owner. A mutex per owner serializes all cart
// operations for that owner, including the whole checkout critical section;
// owners never block each other.
type CartStore struct {
	mu     sync.Mutex
	carts  map[int64][]model.Line
	owners map[int64]*sync.Mutex
}

func NewCartStore() *CartStore {
	return &CartStore{
		carts:  make(map[int64][]model.Line),
		owners: make(map[int64]*sync.Mutex),
	}
}

func (s *CartStore) ownerLock(owner int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.owners[owner]
	if !ok {
		lock = &sync.Mutex{}
		s.owners[owner] = lock
	}
	return lock
}

func (s *CartStore) Lines(owner int64) ([]model.Line, error) {
	lock := s.ownerLock(owner)
	lock.Lock()
	defer lock.Unlock()

	lines, _ := s.read(owner)
	return lines, nil
}

func (s *CartStore) Update(owner int64, fn model.UpdateFunc) ([]model.Line, error) {
	lock := s.ownerLock(owner)
	lock.Lock()
	defer lock.Unlock()

	work, exists := s.read(owner)

	result, err := fn(work, exists)
	if err != nil {
		return nil, err
	}

	// Removing from a cart that was never created must not create one.
	if !exists && len(result) == 0 {
		return nil, nil
	}
	if result == nil {
		result = []model.Line{}
	}

	s.mu.Lock()
	s.carts[owner] = result
	s.mu.Unlock()

	out := make([]model.Line, len(result))
	copy(out, result)
	return out, nil
}

func (s *CartStore) read(owner int64) ([]model.Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.carts[owner]
	if stored == nil {
		return nil, exists
	}
	lines := make([]model.Line, len(stored))
	copy(lines, stored)
	return lines, exists
}
