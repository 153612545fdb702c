package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "Scheduled"
	AppointmentStatusInProgress AppointmentStatus = "In Progress"
	AppointmentStatusCompleted  AppointmentStatus = "Completed"
	AppointmentStatusCancelled  AppointmentStatus = "Cancelled"
)

func IsValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is one booking of a grooming service for a pet at a
// specific date and time slot. Cancelled appointments are kept, never
// deleted, so the booking history stays intact.
type Appointment struct {
	Base
	UserID      uuid.UUID         `db:"user_id"`
	PetName     string            `db:"pet_name"`
	ServiceType string            `db:"service_type"`
	Date        time.Time         `db:"appointment_date"`
	TimeSlot    string            `db:"appointment_time"`
	Status      AppointmentStatus `db:"status"`
	Notes       *string           `db:"notes"`
	Price       float64           `db:"price"`

	// SlotKey is set only for exclusive service types. The database
	// enforces a partial unique index over it so two active bookings can
	// never share the same (date, time, service) key.
	SlotKey *string `db:"slot_key"`
}
