package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

// Orders are created pending; no further transitions are defined here.
const StatusPending Status = "pending"

// Item is an order line copied by value at order-creation time. It never
// references live product state.
type Item struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Order is an immutable fact once appended to the ledger: its items and
// total never change even if the products they were built from are later
// edited or deleted.
type Order struct {
	ID        int64
	Ref       string
	OwnerID   int64
	Items     []Item
	Total     decimal.Decimal
	Status    Status
	CreatedAt time.Time
}

// OrderRepository is an append-only ledger; append order is preserved.
type OrderRepository interface {
	NextID() (int64, error)
	Append(order *Order) error
	FindByOwner(owner int64) ([]Order, error)
	FindAll() ([]Order, error)
}
