package payment_intent_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastshift/internal/dto"
	"fastshift/internal/gateway/stripe"
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
	var intentDTO dto.PaymentIntentCreate
	err := json.NewDecoder(r.Body).Decode(&intentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	intent, err := h.service.CreateIntent(r.Context(), intentDTO.Amount, intentDTO.Currency)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, stripe.ErrUpstreamFailure):
			h.log.With(
				logger.NewField("error", err),
			).Error("payment provider failure")
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
