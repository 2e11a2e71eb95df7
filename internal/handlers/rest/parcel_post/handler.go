package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastshift/internal/dto"
	"fastshift/internal/entities"
	"fastshift/internal/service/parcel"
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
	var parcelDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelType := entities.ParcelType(parcelDTO.Type)
	parcelModifyEntity := entities.ParcelModify{
		Title:           &parcelDTO.Title,
		Type:            &parcelType,
		Weight:          parcelDTO.Weight,
		CreatedBy:       &parcelDTO.CreatedBy,
		SenderName:      &parcelDTO.SenderName,
		SenderContact:   &parcelDTO.SenderContact,
		SenderRegion:    &parcelDTO.SenderRegion,
		SenderAddress:   &parcelDTO.SenderAddress,
		ReceiverName:    &parcelDTO.ReceiverName,
		ReceiverContact: &parcelDTO.ReceiverContact,
		ReceiverRegion:  &parcelDTO.ReceiverRegion,
		ReceiverAddress: &parcelDTO.ReceiverAddress,
	}

	parcelEntity, err := h.service.CreateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidType),
			errors.Is(err, parcel.ErrInvalidWeight),
			errors.Is(err, parcel.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrTrackingIDConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ParcelCreateResponse{
		ID:         parcelEntity.ID,
		TrackingID: parcelEntity.TrackingID,
		Cost:       parcelEntity.Cost,
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
