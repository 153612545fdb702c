package adaptor

import (
	"errors"
	"net/http"

	"pet-grooming/internal/usecase"
	"pet-grooming/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Appointment *AppointmentHandler
	Product     *ProductHandler
	Order       *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Appointment: NewAppointmentHandler(service.Appointment, log),
		Product:     NewProductHandler(service.Product, log),
		Order:       NewOrderHandler(service.Order, log),
	}
}

// errorKind carries a machine-readable discriminator in the errors
// field, so API clients can branch without parsing the message text.
type errorKind struct {
	Kind string `json:"kind"`
}

// handleServiceError maps service sentinel errors to HTTP responses.
// Anything unrecognized is an internal error and the message is not
// leaked to the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrSlotAlreadyBooked):
		log.Warn(operation+" failed - slot taken", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), nil, errorKind{Kind: "SlotAlreadyBooked"})

	case errors.Is(err, usecase.ErrInvalidServiceType):
		log.Warn(operation+" failed - invalid service type", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), nil, errorKind{Kind: "InvalidServiceType"})

	case errors.Is(err, usecase.ErrInvalidTimeSlot):
		log.Warn(operation+" failed - invalid time slot", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), nil, errorKind{Kind: "InvalidTimeSlot"})

	case errors.Is(err, usecase.ErrInvalidDate):
		log.Warn(operation+" failed - invalid date", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), nil, errorKind{Kind: "InvalidDate"})

	case errors.Is(err, usecase.ErrPastDate):
		log.Warn(operation+" failed - past date", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), nil, errorKind{Kind: "PastDate"})

	case errors.Is(err, usecase.ErrInvalidStatus):
		log.Warn(operation+" failed - invalid status", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), nil, errorKind{Kind: "InvalidStatus"})

	case errors.Is(err, usecase.ErrInsufficientStock):
		log.Warn(operation+" failed - insufficient stock", zap.Error(err))
		utils.ResponseJSON(w, http.StatusConflict, false, err.Error(), nil, errorKind{Kind: "InsufficientStock"})

	case errors.Is(err, usecase.ErrProductUnavailable):
		log.Warn(operation+" failed - product unavailable", zap.Error(err))
		utils.ResponseJSON(w, http.StatusConflict, false, err.Error(), nil, errorKind{Kind: "ProductUnavailable"})

	case errors.Is(err, usecase.ErrEmailTaken):
		log.Warn(operation+" failed - email taken", zap.Error(err))
		utils.ResponseJSON(w, http.StatusConflict, false, err.Error(), nil, errorKind{Kind: "EmailTaken"})

	case errors.Is(err, usecase.ErrUsernameTaken):
		log.Warn(operation+" failed - username taken", zap.Error(err))
		utils.ResponseJSON(w, http.StatusConflict, false, err.Error(), nil, errorKind{Kind: "UsernameTaken"})

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
