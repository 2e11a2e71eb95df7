package payments_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastshift/internal/dto"
	"fastshift/internal/pkg/middlewares/authn"
	"fastshift/internal/service/payment"
	"fastshift/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	identity, ok := authn.IdentityFromContext(r.Context())
	if !ok || identity.Email != email {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	payments, err := h.service.GetPaymentsByPayer(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromPaymentList(payments))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
