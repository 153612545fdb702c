package wire

import (
	"pet-grooming/internal/adaptor"
	"pet-grooming/internal/data/repository"
	"pet-grooming/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/orders/create", orderHandler.Create)
		r.Get("/api/orders/my-orders", orderHandler.GetMine)
		r.Get("/api/orders/{id}", orderHandler.GetByID)
		r.Patch("/api/orders/{id}/status", orderHandler.UpdateStatus)
	})
}
