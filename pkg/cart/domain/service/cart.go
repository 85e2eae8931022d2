package service

import (
	"storefront/pkg/cart/domain/model"
	catalogmodel "storefront/pkg/catalog/domain/model"
	"storefront/pkg/common/domain"
)

// ProductSource is the read side of the catalog the cart needs for stock
// validation and price snapshots.
type ProductSource interface {
	Get(id int64) (catalogmodel.Product, error)
}

type CartService interface {
	Get(owner int64) ([]model.Line, error)
	AddItem(owner, productID int64, quantity int) ([]model.Line, error)
	SetQuantity(owner, productID int64, quantity int) ([]model.Line, error)
	RemoveItem(owner, productID int64) ([]model.Line, error)
}

func NewCartService(repo model.CartRepository, products ProductSource, dispatcher domain.EventDispatcher) CartService {
	return &cartService{repo: repo, products: products, dispatcher: dispatcher}
}

type cartService struct {
	repo       model.CartRepository
	products   ProductSource
	dispatcher domain.EventDispatcher
}

func (s *cartService) Get(owner int64) ([]model.Line, error) {
	return s.repo.Lines(owner)
}

func (s *cartService) AddItem(owner, productID int64, quantity int) ([]model.Line, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	// Validation is against live catalog stock, not cart-reserved stock;
	// nothing is reserved until checkout.
	product, err := s.products.Get(productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, catalogmodel.ErrInsufficientStock
	}

	lines, err := s.repo.Update(owner, func(lines []model.Line, _ bool) ([]model.Line, error) {
		for i := range lines {
			if lines[i].ProductID == productID {
				// The snapshot stays as captured at first add; only the
				// quantity accumulates.
				lines[i].Quantity += quantity
				return lines, nil
			}
		}
		return append(lines, model.Line{
			ProductID: productID,
			Quantity:  quantity,
			Snapshot:  snapshotOf(product),
		}), nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.ItemAdded{Owner: owner, ProductID: productID, Quantity: quantity})
	return lines, nil
}

func (s *cartService) SetQuantity(owner, productID int64, quantity int) ([]model.Line, error) {
	removed := false
	lines, err := s.repo.Update(owner, func(lines []model.Line, exists bool) ([]model.Line, error) {
		if !exists {
			return nil, model.ErrCartNotFound
		}
		for i := range lines {
			if lines[i].ProductID != productID {
				continue
			}
			if quantity <= 0 {
				removed = true
				return append(lines[:i], lines[i+1:]...), nil
			}
			lines[i].Quantity = quantity
			return lines, nil
		}
		return nil, model.ErrLineNotFound
	})
	if err != nil {
		return nil, err
	}

	if removed {
		_ = s.dispatcher.Dispatch(model.ItemRemoved{Owner: owner, ProductID: productID})
	} else {
		_ = s.dispatcher.Dispatch(model.QuantityChanged{Owner: owner, ProductID: productID, Quantity: quantity})
	}
	return lines, nil
}

func (s *cartService) RemoveItem(owner, productID int64) ([]model.Line, error) {
	lines, err := s.repo.Update(owner, func(lines []model.Line, _ bool) ([]model.Line, error) {
		kept := lines[:0]
		for _, line := range lines {
			if line.ProductID != productID {
				kept = append(kept, line)
			}
		}
		return kept, nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.ItemRemoved{Owner: owner, ProductID: productID})
	return lines, nil
}

func snapshotOf(p catalogmodel.Product) model.Snapshot {
	return model.Snapshot{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Stock:       p.Stock,
	}
}
