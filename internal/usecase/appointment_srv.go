package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-grooming/internal/catalog"
	"pet-grooming/internal/data/cache"
	"pet-grooming/internal/data/entity"
	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/dto/request"
	"pet-grooming/internal/dto/response"
	"pet-grooming/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type AppointmentService interface {
	// Customer endpoints
	Schedule(ctx context.Context, userID string, req *request.ScheduleAppointmentRequest) (*response.AppointmentResponse, error)
	GetUserAppointments(ctx context.Context, userID string) (*response.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, userID, appointmentID string, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error)

	// Public
	AvailableSlots(ctx context.Context, date, serviceType string) (*response.AvailableSlotsResponse, error)

	// Admin endpoints
	GetByID(ctx context.Context, appointmentID string) (*response.AppointmentResponse, error)
	UpdateStatusAny(ctx context.Context, appointmentID string, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error)
}

type appointmentService struct {
	repo    repository.AppointmentRepository
	catalog *catalog.Catalog
	slots   *cache.SlotCache
	config  *utils.Config
	log     *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	cat *catalog.Catalog,
	slots *cache.SlotCache,
	config *utils.Config,
	log *zap.Logger,
) AppointmentService {
	return &appointmentService{
		repo:    repo,
		catalog: cat,
		slots:   slots,
		config:  config,
		log:     log.With(zap.String("service", "appointment")),
	}
}

func (s *appointmentService) Schedule(ctx context.Context, userID string, req *request.ScheduleAppointmentRequest) (*response.AppointmentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	// 1. Domain validation, fixed order: service type, then time slot,
	// then date, then the remaining fields. Nothing is written until
	// all pass.
	if !s.catalog.Has(req.ServiceType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServiceType, req.ServiceType)
	}

	if !s.catalog.ValidSlot(req.Time) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, req.Time)
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if s.config.Booking.RejectPastDates {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if date.Before(today) {
			return nil, fmt.Errorf("%w: %s", ErrPastDate, req.Date)
		}
	}

	// 2. Shape checks on whatever is left (pet name)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Schedule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	// 3. Friendly pre-check for exclusive services. The unique index is
	// the real arbiter; this just catches the common case before the
	// insert.
	exclusive := s.catalog.IsExclusive(req.ServiceType)
	if exclusive {
		existing, err := s.repo.FindBySlot(ctx, date, req.Time, req.ServiceType)
		if err != nil {
			s.log.Error("Failed to check slot availability", zap.Error(err))
			return nil, fmt.Errorf("check slot availability: %w", err)
		}
		if existing != nil {
			return nil, ErrSlotAlreadyBooked
		}
	}

	// 4. Capture the price at creation time
	price, _ := s.catalog.Price(req.ServiceType)

	now := time.Now()
	appointment := &entity.Appointment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userUUID,
		PetName:     req.PetName,
		ServiceType: req.ServiceType,
		Date:        date,
		TimeSlot:    req.Time,
		Status:      entity.AppointmentStatusScheduled,
		Notes:       req.Notes,
		Price:       price,
	}
	if exclusive {
		key := req.Date + "|" + req.Time + "|" + req.ServiceType
		appointment.SlotKey = &key
	}

	// 5. Insert; a concurrent winner surfaces as ErrDuplicateSlot
	if err := s.repo.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, ErrSlotAlreadyBooked
		}
		s.log.Error("Failed to create appointment", zap.Error(err))
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.slots.Invalidate(ctx, req.Date, req.ServiceType)

	s.log.Info("Appointment scheduled",
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("user_id", userID),
		zap.String("service_type", req.ServiceType),
		zap.String("date", req.Date),
		zap.String("time", req.Time))

	resp := response.AppointmentToResponse(appointment)
	return &resp, nil
}

func (s *appointmentService) GetUserAppointments(ctx context.Context, userID string) (*response.AppointmentListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	appointments, err := s.repo.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to list appointments", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	list := make([]response.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		list = append(list, response.AppointmentToResponse(a))
	}

	return &response.AppointmentListResponse{Appointments: list}, nil
}

// AvailableSlots returns the bookable times for one date and service.
// Shared services always report every slot; exclusive services drop the
// taken ones.
func (s *appointmentService) AvailableSlots(ctx context.Context, dateStr, serviceType string) (*response.AvailableSlotsResponse, error) {
	if !s.catalog.Has(serviceType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidServiceType, serviceType)
	}

	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}

	if !s.catalog.IsExclusive(serviceType) {
		return &response.AvailableSlotsResponse{AvailableSlots: s.catalog.Slots()}, nil
	}

	if cached, ok := s.slots.Get(ctx, dateStr, serviceType); ok {
		return &response.AvailableSlotsResponse{AvailableSlots: cached}, nil
	}

	booked, err := s.repo.FindBookedTimes(ctx, date, serviceType)
	if err != nil {
		s.log.Error("Failed to find booked times", zap.Error(err),
			zap.String("date", dateStr), zap.String("service_type", serviceType))
		return nil, fmt.Errorf("find booked times: %w", err)
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]string, 0)
	for _, slot := range s.catalog.Slots() {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	s.slots.Set(ctx, dateStr, serviceType, available)

	return &response.AvailableSlotsResponse{AvailableSlots: available}, nil
}

// UpdateStatus changes the status of the caller's own appointment. A
// cancellation frees the slot for rebooking; the unique index predicate
// ignores cancelled rows, so no slot bookkeeping is needed here beyond
// cache invalidation.
func (s *appointmentService) UpdateStatus(ctx context.Context, userID, appointmentID string, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	status := entity.AppointmentStatus(req.Status)
	if !entity.IsValidAppointmentStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed user ID", ErrInvalidInput)
	}

	appointmentUUID, err := uuid.Parse(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed appointment ID", ErrInvalidInput)
	}

	if err := s.repo.UpdateStatus(ctx, appointmentUUID, userUUID, status); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrDuplicateSlot):
			// Reinstating into a slot someone else took meanwhile
			return nil, ErrSlotAlreadyBooked
		}
		s.log.Error("Failed to update appointment status", zap.Error(err),
			zap.String("appointment_id", appointmentID))
		return nil, fmt.Errorf("update status: %w", err)
	}

	appointment, err := s.repo.FindByID(ctx, appointmentUUID)
	if err != nil {
		return nil, fmt.Errorf("reload appointment: %w", err)
	}
	if appointment == nil {
		return nil, ErrNotFound
	}

	s.slots.Invalidate(ctx, appointment.Date.Format(dateLayout), appointment.ServiceType)

	s.log.Info("Appointment status updated",
		zap.String("appointment_id", appointmentID),
		zap.String("status", req.Status))

	resp := response.AppointmentToResponse(appointment)
	return &resp, nil
}

func (s *appointmentService) GetByID(ctx context.Context, appointmentID string) (*response.AppointmentResponse, error) {
	appointmentUUID, err := uuid.Parse(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed appointment ID", ErrInvalidInput)
	}

	appointment, err := s.repo.FindByID(ctx, appointmentUUID)
	if err != nil {
		s.log.Error("Failed to find appointment", zap.Error(err),
			zap.String("appointment_id", appointmentID))
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	if appointment == nil {
		return nil, ErrNotFound
	}

	resp := response.AppointmentToResponse(appointment)
	return &resp, nil
}

func (s *appointmentService) UpdateStatusAny(ctx context.Context, appointmentID string, req *request.UpdateAppointmentStatusRequest) (*response.AppointmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	status := entity.AppointmentStatus(req.Status)
	if !entity.IsValidAppointmentStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	appointmentUUID, err := uuid.Parse(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed appointment ID", ErrInvalidInput)
	}

	if err := s.repo.UpdateStatusAny(ctx, appointmentUUID, status); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrDuplicateSlot):
			return nil, ErrSlotAlreadyBooked
		}
		s.log.Error("Failed to update appointment status", zap.Error(err),
			zap.String("appointment_id", appointmentID))
		return nil, fmt.Errorf("update status: %w", err)
	}

	appointment, err := s.repo.FindByID(ctx, appointmentUUID)
	if err != nil {
		return nil, fmt.Errorf("reload appointment: %w", err)
	}
	if appointment == nil {
		return nil, ErrNotFound
	}

	s.slots.Invalidate(ctx, appointment.Date.Format(dateLayout), appointment.ServiceType)

	resp := response.AppointmentToResponse(appointment)
	return &resp, nil
}
