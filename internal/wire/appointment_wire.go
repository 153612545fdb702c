package wire

import (
	"pet-grooming/internal/adaptor"
	"pet-grooming/internal/data/repository"
	"pet-grooming/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAppointment(
	r chi.Router,
	appointmentHandler *adaptor.AppointmentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/appointments/available-slots", appointmentHandler.AvailableSlots)

	// ==================== PROTECTED ROUTES ====================
	auth := middleware.AuthSession(repo.Session, log)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/appointments/schedule", appointmentHandler.Schedule)
		r.Get("/api/appointments/my-appointments", appointmentHandler.GetMine)
		r.Patch("/api/appointments/{id}/status", appointmentHandler.UpdateStatus)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/api/admin/appointments/{id}", appointmentHandler.GetByID)
		r.Put("/api/admin/appointments/{id}/status", appointmentHandler.UpdateStatusAny)
	})
}
