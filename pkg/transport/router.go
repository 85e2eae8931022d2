package transport

import (
	"net/http"

	"github.com/gorilla/mux"

	cartservice "storefront/pkg/cart/domain/service"
	catalogservice "storefront/pkg/catalog/domain/service"
	checkoutservice "storefront/pkg/checkout/domain/service"
	"storefront/pkg/infrastructure/auth"
	orderservice "storefront/pkg/order/domain/service"
	userservice "storefront/pkg/user/domain/service"
)

type Handler struct {
	catalog  catalogservice.CatalogService
	carts    cartservice.CartService
	ledger   orderservice.LedgerService
	checkout checkoutservice.CheckoutService
	users    userservice.UserService
	tokens   *auth.TokenManager
}

func NewHandler(
	catalog catalogservice.CatalogService,
	carts cartservice.CartService,
	ledger orderservice.LedgerService,
	checkout checkoutservice.CheckoutService,
	users userservice.UserService,
	tokens *auth.TokenManager,
) *Handler {
	return &Handler{
		catalog:  catalog,
		carts:    carts,
		ledger:   ledger,
		checkout: checkout,
		users:    users,
		tokens:   tokens,
	}
}

func Router(h *Handler) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", h.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)

	api.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.getProduct).Methods(http.MethodGet)
	api.Handle("/products", h.admin(h.createProduct)).Methods(http.MethodPost)
	api.Handle("/products/{id}", h.admin(h.updateProduct)).Methods(http.MethodPut)
	api.Handle("/products/{id}", h.admin(h.deleteProduct)).Methods(http.MethodDelete)

	api.Handle("/cart", h.authed(h.getCart)).Methods(http.MethodGet)
	api.Handle("/cart", h.authed(h.addCartItem)).Methods(http.MethodPost)
	api.Handle("/cart/{productId}", h.authed(h.setCartQuantity)).Methods(http.MethodPut)
	api.Handle("/cart/{productId}", h.authed(h.removeCartItem)).Methods(http.MethodDelete)

	api.Handle("/orders", h.authed(h.placeOrder)).Methods(http.MethodPost)
	api.Handle("/orders", h.authed(h.listOrders)).Methods(http.MethodGet)
	api.Handle("/orders/all", h.admin(h.listAllOrders)).Methods(http.MethodGet)

	return logMiddleware(r)
}
