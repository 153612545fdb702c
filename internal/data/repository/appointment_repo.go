package repository

import (
	"context"
	"fmt"
	"time"

	"pet-grooming/internal/data/entity"
	"pet-grooming/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	// Create inserts the appointment. A conflict on the exclusive slot
	// key comes back as ErrDuplicateSlot.
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error)

	// Business queries for the booking flow
	FindBySlot(ctx context.Context, date time.Time, timeSlot, serviceType string) (*entity.Appointment, error)
	FindBookedTimes(ctx context.Context, date time.Time, serviceType string) ([]string, error)
	UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entity.AppointmentStatus) error
	UpdateStatusAny(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error
}

type appointmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

const appointmentColumns = `id, user_id, pet_name, service_type, appointment_date, appointment_time, status, notes, price, slot_key, created_at, updated_at`

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.UserID,
		&appointment.PetName,
		&appointment.ServiceType,
		&appointment.Date,
		&appointment.TimeSlot,
		&appointment.Status,
		&appointment.Notes,
		&appointment.Price,
		&appointment.SlotKey,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		appointment.ID,
		appointment.UserID,
		appointment.PetName,
		appointment.ServiceType,
		appointment.Date,
		appointment.TimeSlot,
		appointment.Status,
		appointment.Notes,
		appointment.Price,
		appointment.SlotKey,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race for an exclusive slot; the unique index is
			// the authoritative arbiter.
			return ErrDuplicateSlot
		}
		r.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("user_id", appointment.UserID.String()),
			zap.String("service_type", appointment.ServiceType),
		)
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE id = $1
	`

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find appointment by ID",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return nil, fmt.Errorf("find appointment by ID %s: %w", id.String(), err)
	}

	return appointment, nil
}

func (r *appointmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE user_id = $1
		ORDER BY appointment_date DESC, appointment_time DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find appointments by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find appointments by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var appointments []*entity.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			r.log.Error("Failed to scan appointment row", zap.Error(err))
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, rows.Err()
}

// FindBySlot returns the active (non-cancelled) appointment occupying
// the exact (date, time, service) key, or nil when the slot is free.
func (r *appointmentRepository) FindBySlot(ctx context.Context, date time.Time, timeSlot, serviceType string) (*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE appointment_date = $1
		  AND appointment_time = $2
		  AND service_type = $3
		  AND status <> $4
		LIMIT 1
	`

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, date, timeSlot, serviceType, entity.AppointmentStatusCancelled))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find appointment by slot",
			zap.Error(err),
			zap.Time("date", date),
			zap.String("time", timeSlot),
			zap.String("service_type", serviceType),
		)
		return nil, fmt.Errorf("find appointment by slot: %w", err)
	}

	return appointment, nil
}

// FindBookedTimes returns the time slots with an active appointment on
// the given date for the given service type.
func (r *appointmentRepository) FindBookedTimes(ctx context.Context, date time.Time, serviceType string) ([]string, error) {
	query := `
		SELECT appointment_time
		FROM appointments
		WHERE appointment_date = $1
		  AND service_type = $2
		  AND status <> $3
	`

	rows, err := r.db.Query(ctx, query, date, serviceType, entity.AppointmentStatusCancelled)
	if err != nil {
		r.log.Error("Failed to find booked times",
			zap.Error(err),
			zap.Time("date", date),
			zap.String("service_type", serviceType),
		)
		return nil, fmt.Errorf("find booked times: %w", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			r.log.Error("Failed to scan booked time", zap.Error(err))
			return nil, fmt.Errorf("scan booked time: %w", err)
		}
		times = append(times, t)
	}

	return times, rows.Err()
}

// UpdateStatus changes the status of an appointment owned by userID.
// Returns ErrNotFound when the appointment does not exist or belongs to
// someone else; the two cases are indistinguishable on purpose.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entity.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query, id, userID, status)
	if err != nil {
		if isUniqueViolation(err) {
			// Un-cancelling into an already re-booked slot.
			return ErrDuplicateSlot
		}
		r.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update appointment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *appointmentRepository) UpdateStatusAny(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	query := `UPDATE appointments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		r.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update appointment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
