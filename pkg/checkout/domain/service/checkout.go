package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	cartmodel "storefront/pkg/cart/domain/model"
	catalogmodel "storefront/pkg/catalog/domain/model"
	"storefront/pkg/common/domain"
	ordermodel "storefront/pkg/order/domain/model"
	orderservice "storefront/pkg/order/domain/service"
)

var ErrEmptyCart = errors.New("cart is empty")

// StockAdjuster is the slice of the catalog checkout needs: the per-product
// decrement. Sufficiency was validated at add-to-cart time and is not
// re-checked here.
type StockAdjuster interface {
	AdjustStock(id int64, delta int) error
}

type CheckoutService interface {
	PlaceOrder(owner int64) (ordermodel.Order, error)
}

func NewCheckoutService(carts cartmodel.CartRepository, ledger orderservice.LedgerService, stock StockAdjuster, dispatcher domain.EventDispatcher) CheckoutService {
	return &checkoutService{carts: carts, ledger: ledger, stock: stock, dispatcher: dispatcher}
}

type checkoutService struct {
	carts      cartmodel.CartRepository
	ledger     orderservice.LedgerService
	stock      StockAdjuster
	dispatcher domain.EventDispatcher
}

// PlaceOrder converts the owner's cart into an order. The whole sequence runs
// inside the cart repository's per-owner critical section, so a concurrent
// second submit from the same owner finds an empty cart instead of draining
// it twice, and no partially cleared cart is ever observable.
func (s *checkoutService) PlaceOrder(owner int64) (ordermodel.Order, error) {
	var placed ordermodel.Order

	_, err := s.carts.Update(owner, func(lines []cartmodel.Line, _ bool) ([]cartmodel.Line, error) {
		if len(lines) == 0 {
			return nil, ErrEmptyCart
		}

		items := make([]ordermodel.Item, 0, len(lines))
		total := decimal.Zero
		for _, line := range lines {
			// Snapshot price, not a live re-read: a price change between add
			// and checkout does not affect this order.
			total = total.Add(line.Snapshot.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, ordermodel.Item{
				ProductID:   line.ProductID,
				ProductName: line.Snapshot.Name,
				UnitPrice:   line.Snapshot.Price,
				Quantity:    line.Quantity,
			})
		}

		stored, err := s.ledger.Append(ordermodel.Order{
			OwnerID:   owner,
			Items:     items,
			Total:     total.Round(2),
			Status:    ordermodel.StatusPending,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return nil, err
		}
		placed = stored

		// A product deleted since it was added is still billed from its
		// snapshot; only live products get their stock decremented.
		for _, line := range lines {
			if err := s.stock.AdjustStock(line.ProductID, -line.Quantity); err != nil && !errors.Is(err, catalogmodel.ErrProductNotFound) {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		return ordermodel.Order{}, err
	}

	_ = s.dispatcher.Dispatch(ordermodel.OrderPlaced{
		OrderID: placed.ID,
		OwnerID: owner,
		Total:   placed.Total,
		Lines:   len(placed.Items),
	})
	return placed, nil
}
