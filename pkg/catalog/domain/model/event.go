package model

type ProductCreated struct {
	ProductID int64
	Name      string
}

func (e ProductCreated) Type() string { return "ProductCreated" }

type ProductUpdated struct {
	ProductID int64
}

func (e ProductUpdated) Type() string { return "ProductUpdated" }

type ProductDeleted struct {
	ProductID int64
}

func (e ProductDeleted) Type() string { return "ProductDeleted" }

type ProductStockAdjusted struct {
	ProductID int64
	Delta     int
	NewStock  int
}

func (e ProductStockAdjusted) Type() string { return "ProductStockAdjusted" }
