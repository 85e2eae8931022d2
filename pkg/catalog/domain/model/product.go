package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidInput      = errors.New("invalid input")
)

type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Category    string
	Description string
	Image       string
	Stock       int
}

// Draft carries the mutable fields of a product for create and update
// operations. The identifier is assigned by the catalog and never part of a
// draft.
type Draft struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Description string
	Image       string
	Stock       int
}

type ProductRepository interface {
	NextID() (int64, error)
	Store(product *Product) error
	Find(id int64) (*Product, error)
	Delete(id int64) error
	// List returns a copy of all products in insertion order.
	List() ([]Product, error)
	// AdjustStock applies delta to the product's stock as a single atomic
	// read-modify-write and returns the new stock level. It does not enforce a
	// lower bound; sufficiency is validated at add-to-cart time.
	AdjustStock(id int64, delta int) (int, error)
}
