package users_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastshift/internal/dto"
	"fastshift/internal/entities"
	"fastshift/internal/service/user"
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
	var userDTO dto.UserCreate
	err := json.NewDecoder(r.Body).Decode(&userDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userModifyEntity := entities.UserModify{
		Email: &userDTO.Email,
		Name:  &userDTO.Name,
	}
	if userDTO.PhotoURL != "" {
		userModifyEntity.PhotoURL = &userDTO.PhotoURL
	}

	userEntity, created, err := h.service.EnsureUser(r.Context(), userModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// существующий пользователь это не ошибка, но и не создание
	status := http.StatusOK
	message := "User exists"
	if created {
		status = http.StatusCreated
		message = "User created"
	}

	response := dto.UserCreateResponse{
		Message: message,
		ID:      userEntity.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
