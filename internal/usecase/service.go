package usecase

import (
	"pet-grooming/internal/catalog"
	"pet-grooming/internal/data/cache"
	"pet-grooming/internal/data/repository"
	"pet-grooming/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Appointment AppointmentService
	Product     ProductService
	Order       OrderService
}

func NewService(
	repo *repository.Repository,
	cat *catalog.Catalog,
	slots *cache.SlotCache,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo, log),
		Appointment: NewAppointmentService(repo.Appointment, cat, slots, config, log),
		Product:     NewProductService(repo.Product, log),
		Order:       NewOrderService(repo, log),
	}
}
