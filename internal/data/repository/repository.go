package repository

import (
	"errors"

	"pet-grooming/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateSlot is returned when the appointments slot-key unique
	// index rejects a write. The service layer translates it into the
	// user-facing slot-already-booked error.
	ErrDuplicateSlot = errors.New("slot already taken")

	// ErrNotFound is returned by scoped updates that matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when a guarded stock decrement
	// matched no row: the product is gone or has too few units left.
	ErrInsufficientStock = errors.New("insufficient stock")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Appointment AppointmentRepository
	Product     ProductRepository
	Order       OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Appointment: NewAppointmentRepository(db, log),
		Product:     NewProductRepository(db, log),
		Order:       NewOrderRepository(db, log),
	}
}
