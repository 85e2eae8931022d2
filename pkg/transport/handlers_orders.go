package transport

import (
	"net/http"
	"time"

	ordermodel "storefront/pkg/order/domain/model"
)

type orderItemPayload struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type orderPayload struct {
	ID        int64              `json:"id"`
	Ref       string             `json:"ref"`
	UserID    int64              `json:"userId"`
	Items     []orderItemPayload `json:"items"`
	Total     string             `json:"total"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

func toOrderPayload(order ordermodel.Order) orderPayload {
	items := make([]orderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemPayload{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.UnitPrice.InexactFloat64(),
			Quantity:    item.Quantity,
		})
	}
	return orderPayload{
		ID:        order.ID,
		Ref:       order.Ref,
		UserID:    order.OwnerID,
		Items:     items,
		Total:     order.Total.StringFixed(2),
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

func toOrderListPayload(orders []ordermodel.Order) []orderPayload {
	out := make([]orderPayload, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderPayload(order))
	}
	return out
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.PlaceOrder(claimsFrom(r).UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderPayload(order))
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ledger.ListByOwner(claimsFrom(r).UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderListPayload(orders))
}

func (h *Handler) listAllOrders(w http.ResponseWriter, _ *http.Request) {
	orders, err := h.ledger.ListAll()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderListPayload(orders))
}
