package rider_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var applicationDTO dto.RiderApplicationCreate
	err := json.NewDecoder(r.Body).Decode(&applicationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	applicationModifyEntity := entities.RiderApplicationModify{
		Name:       &applicationDTO.Name,
		Email:      &applicationDTO.Email,
		Age:        &applicationDTO.Age,
		Phone:      &applicationDTO.Phone,
		NationalID: &applicationDTO.NID,
		Region:     &applicationDTO.Region,
		District:   &applicationDTO.District,
		Address:    &applicationDTO.Address,
		BikeBrand:  &applicationDTO.BikeBrand,
		BikeNumber: &applicationDTO.BikeNumber,
	}

	id, err := h.service.SubmitApplication(r.Context(), applicationModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidEmail),
			errors.Is(err, rider.ErrInvalidAge):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RiderApplicationCreateResponse{
		Message:    "Rider applied",
		InsertedID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
