package response

import (
	"time"

	"pet-grooming/internal/data/entity"
)

type AppointmentResponse struct {
	ID          string                   `json:"id"`
	UserID      string                   `json:"userId"`
	PetName     string                   `json:"petName"`
	ServiceType string                   `json:"serviceType"`
	Date        string                   `json:"date"`
	Time        string                   `json:"time"`
	Status      entity.AppointmentStatus `json:"status"`
	Notes       *string                  `json:"notes,omitempty"`
	Price       float64                  `json:"price"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

func AppointmentToResponse(a *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		PetName:     a.PetName,
		ServiceType: a.ServiceType,
		Date:        a.Date.Format("2006-01-02"),
		Time:        a.TimeSlot,
		Status:      a.Status,
		Notes:       a.Notes,
		Price:       a.Price,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
