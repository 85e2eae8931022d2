package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrLineNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
)

// Snapshot freezes the product fields a cart line was created with. Later
// catalog edits or deletes never touch it, so a line keeps pricing a product
// the way it looked when the owner put it in the cart.
type Snapshot struct {
	ProductID   int64
	Name        string
	Price       decimal.Decimal
	Category    string
	Description string
	Image       string
	Stock       int
}

// Line is one product in an owner's cart. Quantity is always at least 1; a
// line whose quantity drops to zero is removed rather than stored.
type Line struct {
	ProductID int64
	Quantity  int
	Snapshot  Snapshot
}

// UpdateFunc receives a copy of the owner's current lines, which it may
// mutate freely, and returns the lines the cart should hold afterwards.
// The exists flag distinguishes a cart that was never created from one that
// is present but empty.
type UpdateFunc func(lines []Line, exists bool) ([]Line, error)

// CartRepository stores one cart per owner, lines in insertion order.
type CartRepository interface {
	Lines(owner int64) ([]Line, error)
	// Update runs fn while holding the owner's lock, so all cart mutations
	// for one owner are serialized. The cart is replaced only when fn
	// succeeds; an absent cart stays absent when fn returns no lines.
	Update(owner int64, fn UpdateFunc) ([]Line, error)
}
