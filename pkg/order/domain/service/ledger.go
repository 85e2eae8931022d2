package service

import (
	"github.com/google/uuid"

	"storefront/pkg/order/domain/model"
)

type LedgerService interface {
	// Append assigns the next monotonic identifier and a public reference,
	// stores the order, and returns the stored copy.
	Append(order model.Order) (model.Order, error)
	ListByOwner(owner int64) ([]model.Order, error)
	ListAll() ([]model.Order, error)
}

func NewLedgerService(repo model.OrderRepository) LedgerService {
	return &ledgerService{repo: repo}
}

type ledgerService struct {
	repo model.OrderRepository
}

func (s *ledgerService) Append(order model.Order) (model.Order, error) {
	id, err := s.repo.NextID()
	if err != nil {
		return model.Order{}, err
	}

	order.ID = id
	order.Ref = uuid.NewString()

	if err := s.repo.Append(&order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (s *ledgerService) ListByOwner(owner int64) ([]model.Order, error) {
	return s.repo.FindByOwner(owner)
}

func (s *ledgerService) ListAll() ([]model.Order, error) {
	return s.repo.FindAll()
}
