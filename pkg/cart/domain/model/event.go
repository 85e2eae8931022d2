package model

type ItemAdded struct {
	Owner     int64
	ProductID int64
	Quantity  int
}

func (e ItemAdded) Type() string { return "ItemAdded" }

type QuantityChanged struct {
	Owner     int64
	ProductID int64
	Quantity  int
}

func (e QuantityChanged) Type() string { return "QuantityChanged" }

type ItemRemoved struct {
	Owner     int64
	ProductID int64
}

func (e ItemRemoved) Type() string { return "ItemRemoved" }
