package model

import "github.com/shopspring/decimal"

type OrderPlaced struct {
	OrderID int64
	OwnerID int64
	Total   decimal.Decimal
	Lines   int
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }
