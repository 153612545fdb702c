package adaptor

import (
	"encoding/json"
	"net/http"

	"pet-grooming/internal/dto/request"
	"pet-grooming/internal/usecase"
	"pet-grooming/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	service usecase.AppointmentService
	log     *zap.Logger
}

func NewAppointmentHandler(service usecase.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "appointment")),
	}
}

// Schedule handles POST /api/appointments/schedule
func (h *AppointmentHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.ScheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Schedule(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "schedule appointment")
		return
	}

	utils.ResponseCreated(w, "Appointment scheduled", response)
}

// GetMine handles GET /api/appointments/my-appointments
func (h *AppointmentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	response, err := h.service.GetUserAppointments(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "list appointments")
		return
	}

	utils.ResponseSuccess(w, "Appointments retrieved", response)
}

// AvailableSlots handles GET /api/appointments/available-slots?date=...&serviceType=...
// Public: the booking UI calls this before the customer logs in.
func (h *AppointmentHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	serviceType := r.URL.Query().Get("serviceType")

	if date == "" || serviceType == "" {
		utils.ResponseBadRequest(w, "date and serviceType query parameters are required", nil)
		return
	}

	response, err := h.service.AvailableSlots(r.Context(), date, serviceType)
	if err != nil {
		handleServiceError(w, h.log, err, "available slots")
		return
	}

	utils.ResponseSuccess(w, "Available slots retrieved", response)
}

// UpdateStatus handles PATCH /api/appointments/{id}/status
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	appointmentID := chi.URLParam(r, "id")

	var req request.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateStatus(r.Context(), userID.String(), appointmentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update appointment status")
		return
	}

	utils.ResponseSuccess(w, "Appointment status updated", response)
}

// GetByID handles GET /api/admin/appointments/{id}
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")

	response, err := h.service.GetByID(r.Context(), appointmentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get appointment")
		return
	}

	utils.ResponseSuccess(w, "Appointment retrieved", response)
}

// UpdateStatusAny handles PUT /api/admin/appointments/{id}/status
func (h *AppointmentHandler) UpdateStatusAny(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")

	var req request.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateStatusAny(r.Context(), appointmentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update appointment status")
		return
	}

	utils.ResponseSuccess(w, "Appointment status updated", response)
}
