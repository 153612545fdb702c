package wire

import (
	"pet-grooming/internal/adaptor"
	"pet-grooming/internal/data/repository"
	"pet-grooming/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/products", productHandler.List)
	r.Get("/api/products/{id}", productHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/admin/products", productHandler.Create)
		r.Put("/api/admin/products/{id}", productHandler.Update)
		r.Delete("/api/admin/products/{id}", productHandler.Delete)
	})
}
