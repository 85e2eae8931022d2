package transport

import (
	"encoding/json"
	"net/http"

	cartmodel "storefront/pkg/cart/domain/model"
)

type cartLinePayload struct {
	ProductID int64          `json:"productId"`
	Quantity  int            `json:"quantity"`
	Product   productPayload `json:"product"`
}

func toCartPayload(lines []cartmodel.Line) []cartLinePayload {
	out := make([]cartLinePayload, 0, len(lines))
	for _, line := range lines {
		out = append(out, cartLinePayload{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Product: productPayload{
				ID:          line.Snapshot.ProductID,
				Name:        line.Snapshot.Name,
				Price:       line.Snapshot.Price.InexactFloat64(),
				Category:    line.Snapshot.Category,
				Description: line.Snapshot.Description,
				Image:       line.Snapshot.Image,
				Stock:       line.Snapshot.Stock,
			},
		})
	}
	return out
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	lines, err := h.carts.Get(claimsFrom(r).UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartPayload(lines))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lines, err := h.carts.AddItem(claimsFrom(r).UserID, payload.ProductID, payload.Quantity)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartPayload(lines))
}

func (h *Handler) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lines, err := h.carts.SetQuantity(claimsFrom(r).UserID, productID, payload.Quantity)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartPayload(lines))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	lines, err := h.carts.RemoveItem(claimsFrom(r).UserID, productID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartPayload(lines))
}
