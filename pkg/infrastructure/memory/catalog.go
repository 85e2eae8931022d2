package memory

import (
	"sync"

	"github.com/pkg/errors"

	"storefront/pkg/catalog/domain/model"
)

// ProductStore is an in-memory catalog keyed by product id. A single RWMutex
// guards the backing map; stock adjustments are a read-modify-write under the
// write lock so concurrent checkouts cannot lose decrements.
type ProductStore struct {
	mu    sync.RWMutex
	seq   int64
	byID  map[int64]*model.Product
	order []int64
}

func NewProductStore() *ProductStore {
	return &ProductStore{byID: make(map[int64]*model.Product)}
}

func (s *ProductStore) NextID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq, nil
}

func (s *ProductStore) Store(product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[product.ID]; !ok {
		s.order = append(s.order, product.ID)
	}
	clone := *product
	s.byID[product.ID] = &clone
	return nil
}

func (s *ProductStore) Find(id int64) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.byID[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrProductNotFound, "product %d", id)
	}
	clone := *product
	return &clone, nil
}

func (s *ProductStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return errors.Wrapf(model.ErrProductNotFound, "product %d", id)
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *ProductStore) List() ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, *s.byID[id])
	}
	return products, nil
}

func (s *ProductStore) AdjustStock(id int64, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.byID[id]
	if !ok {
		return 0, errors.Wrapf(model.ErrProductNotFound, "product %d", id)
	}
	product.Stock += delta
	return product.Stock, nil
}
