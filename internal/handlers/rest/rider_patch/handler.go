package rider_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastshift/internal/dto"
	"fastshift/internal/entities"
	"fastshift/internal/service/rider"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.RiderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch entities.ApplicationStatusType(statusDTO.Status) {
	case entities.ApplicationActive:
		_, err = h.service.ApproveApplication(r.Context(), id)
	case entities.ApplicationCancelled:
		_, err = h.service.RejectApplication(r.Context(), id)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidApplicationID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrApplicationNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrAlreadyProcessed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.Message{Message: "Rider status updated"})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
