package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	cartmodel "storefront/pkg/cart/domain/model"
	catalogmodel "storefront/pkg/catalog/domain/model"
	checkoutservice "storefront/pkg/checkout/domain/service"
	usermodel "storefront/pkg/user/domain/model"
	userservice "storefront/pkg/user/domain/service"
)

type errorPayload struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorPayload{Message: message})
}

// writeDomainError maps the core's typed failures onto transport status
// codes: absence is 404, everything the caller can fix is 400.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogmodel.ErrProductNotFound),
		errors.Is(err, cartmodel.ErrCartNotFound),
		errors.Is(err, cartmodel.ErrLineNotFound),
		errors.Is(err, usermodel.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalogmodel.ErrInsufficientStock),
		errors.Is(err, catalogmodel.ErrInvalidInput),
		errors.Is(err, cartmodel.ErrInvalidQuantity),
		errors.Is(err, checkoutservice.ErrEmptyCart),
		errors.Is(err, usermodel.ErrUserAlreadyExists),
		errors.Is(err, usermodel.ErrInvalidCredentials),
		errors.Is(err, usermodel.ErrInvalidRole),
		errors.Is(err, userservice.ErrMissingFields):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("unhandled domain error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
