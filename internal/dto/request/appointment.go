package request

// ScheduleAppointmentRequest carries the booking form. Date is a plain
// calendar date (2006-01-02); Time is one of the salon's hourly slots.
// Service type, time slot and date are checked in the service layer,
// in that order, so the client sees the specific error kind rather
// than a generic validation failure; only petName uses a struct tag.
type ScheduleAppointmentRequest struct {
	PetName     string  `json:"petName" validate:"required"`
	ServiceType string  `json:"serviceType"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Notes       *string `json:"notes,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
