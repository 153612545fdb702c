package wire

import (
	"net/http"

	"pet-grooming/internal/adaptor"
	"pet-grooming/internal/catalog"
	"pet-grooming/internal/data/cache"
	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/usecase"
	"pet-grooming/pkg/middleware"
	"pet-grooming/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	cat *catalog.Catalog,
	slots *cache.SlotCache,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, cat, slots, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, logger)
	wireAppointment(r, handler.Appointment, repo, logger)
	wireProduct(r, handler.Product, repo, logger)
	wireOrder(r, handler.Order, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
