package wire

import (
	"pet-grooming/internal/adaptor"
	"pet-grooming/internal/data/repository"
	"pet-grooming/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, log)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Get("/api/profile", userHandler.GetProfile)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/api/admin/users", userHandler.GetAll)
		r.Delete("/api/admin/users/{id}", userHandler.Delete)
	})
}
