package wire

import (
	"pet-grooming/internal/adaptor"
	"pet-grooming/internal/data/repository"
	"pet-grooming/pkg/middleware"
	"pet-grooming/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Register and login sit behind the per-IP rate limiter: they are
	// the unauthenticated endpoints worth brute-forcing.
	limited := middleware.RateLimit(config.RateLimit, log)
	r.With(limited).Post("/api/register", authHandler.Register)
	r.With(limited).Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout", authHandler.Logout)
}
