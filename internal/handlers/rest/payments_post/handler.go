package payments_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastshift/internal/dto"
	"fastshift/internal/entities"
	"fastshift/internal/service/parcel"
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
	var paymentDTO dto.PaymentCreate
	err := json.NewDecoder(r.Body).Decode(&paymentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentModifyEntity := entities.PaymentModify{
		ParcelID:      &paymentDTO.ParcelID,
		PayerEmail:    &paymentDTO.Email,
		TransactionID: &paymentDTO.TransactionID,
		Amount:        &paymentDTO.Amount,
		Method:        &paymentDTO.PaymentMethod,
	}

	recorded, err := h.service.RecordPayment(r.Context(), paymentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingRequiredFields),
			errors.Is(err, payment.ErrInvalidParcelID),
			errors.Is(err, payment.ErrInvalidAmount),
			errors.Is(err, payment.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrAlreadyPaid):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentCreateResponse{
		Message:    "Payment recorded",
		InsertedID: recorded.ID,
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
