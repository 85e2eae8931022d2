package memory

import (
	"sync"

	"storefront/pkg/order/domain/model"
)

// OrderStore is an append-only in-memory ledger. Orders are copied in and
// copied out, so nothing handed to a caller can reach the stored record.
type OrderStore struct {
	mu     sync.Mutex
	seq    int64
	orders []model.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) NextID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq, nil
}

func (s *OrderStore) Append(order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, cloneOrder(*order))
	return nil
}

func (s *OrderStore) FindByOwner(owner int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []model.Order
	for _, order := range s.orders {
		if order.OwnerID == owner {
			orders = append(orders, cloneOrder(order))
		}
	}
	return orders, nil
}

func (s *OrderStore) FindAll() ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]model.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, cloneOrder(order))
	}
	return orders, nil
}

func cloneOrder(order model.Order) model.Order {
	items := make([]model.Item, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
