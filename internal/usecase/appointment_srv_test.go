package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"pet-grooming/internal/catalog"
	"pet-grooming/internal/data/entity"
	"pet-grooming/internal/data/repository"
	"pet-grooming/internal/dto/request"
	"pet-grooming/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAppointmentRepo enforces slot-key uniqueness under a mutex, the
// same guarantee the partial unique index gives in Postgres. That makes
// concurrent Schedule calls race for real in tests.
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments: make(map[uuid.UUID]*entity.Appointment),
	}
}

func (f *fakeAppointmentRepo) slotTaken(key string, exclude uuid.UUID) bool {
	for _, a := range f.appointments {
		if a.ID == exclude || a.SlotKey == nil || a.Status == entity.AppointmentStatusCancelled {
			continue
		}
		if *a.SlotKey == key {
			return true
		}
	}
	return false
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if appointment.SlotKey != nil && f.slotTaken(*appointment.SlotKey, appointment.ID) {
		return repository.ErrDuplicateSlot
	}

	cp := *appointment
	f.appointments[appointment.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Appointment
	for _, a := range f.appointments {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindBySlot(ctx context.Context, date time.Time, timeSlot, serviceType string) (*entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.appointments {
		if a.Date.Equal(date) && a.TimeSlot == timeSlot && a.ServiceType == serviceType &&
			a.Status != entity.AppointmentStatusCancelled {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindBookedTimes(ctx context.Context, date time.Time, serviceType string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var times []string
	for _, a := range f.appointments {
		if a.Date.Equal(date) && a.ServiceType == serviceType &&
			a.Status != entity.AppointmentStatusCancelled {
			times = append(times, a.TimeSlot)
		}
	}
	return times, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status entity.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.appointments[id]
	if !ok || a.UserID != userID {
		return repository.ErrNotFound
	}
	if status != entity.AppointmentStatusCancelled && a.Status == entity.AppointmentStatusCancelled &&
		a.SlotKey != nil && f.slotTaken(*a.SlotKey, a.ID) {
		return repository.ErrDuplicateSlot
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAppointmentRepo) UpdateStatusAny(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.appointments[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAppointmentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

func newTestAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return NewAppointmentService(
		repo,
		catalog.Default(),
		nil, // no cache in unit tests
		&utils.Config{},
		zap.NewNop(),
	)
}

func scheduleReq(service, date, slot string) *request.ScheduleAppointmentRequest {
	return &request.ScheduleAppointmentRequest{
		PetName:     "Biscuit",
		ServiceType: service,
		Date:        date,
		Time:        slot,
	}
}

func TestAppointmentService_Schedule(t *testing.T) {
	userID := uuid.New().String()

	t.Run("exclusive service books once", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		resp, err := svc.Schedule(context.Background(), userID, scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		require.NoError(t, err)
		assert.Equal(t, "Hair Grooming", resp.ServiceType)
		assert.Equal(t, 50.0, resp.Price)
		assert.Equal(t, entity.AppointmentStatusScheduled, resp.Status)

		_, err = svc.Schedule(context.Background(), uuid.New().String(), scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
		assert.Equal(t, 1, repo.count())
	})

	t.Run("same time different service is allowed", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		_, err := svc.Schedule(context.Background(), userID, scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		require.NoError(t, err)

		_, err = svc.Schedule(context.Background(), userID, scheduleReq("Nail Trimming", "2025-07-01", "10:00"))
		assert.NoError(t, err)
	})

	t.Run("shared service has no slot limit", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		for i := 0; i < 5; i++ {
			resp, err := svc.Schedule(context.Background(), uuid.New().String(), scheduleReq("Nail Trimming", "2025-07-01", "10:00"))
			require.NoError(t, err)
			assert.Equal(t, 15.0, resp.Price)
		}
		assert.Equal(t, 5, repo.count())
	})

	t.Run("unknown service writes nothing", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		_, err := svc.Schedule(context.Background(), userID, scheduleReq("Unicorn Polishing", "2025-07-01", "10:00"))
		assert.ErrorIs(t, err, ErrInvalidServiceType)
		assert.Equal(t, 0, repo.count())
	})

	t.Run("invalid time slot", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		_, err := svc.Schedule(context.Background(), userID, scheduleReq("Hair Grooming", "2025-07-01", "10:30"))
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		assert.Equal(t, 0, repo.count())
	})

	t.Run("invalid date format", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		_, err := svc.Schedule(context.Background(), userID, scheduleReq("Hair Grooming", "01-07-2025", "10:00"))
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("service type checked before time slot", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		// Both invalid: the service type error wins
		_, err := svc.Schedule(context.Background(), userID, scheduleReq("Unicorn Polishing", "bad-date", "25:00"))
		assert.ErrorIs(t, err, ErrInvalidServiceType)
	})

	t.Run("service type checked before pet name", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		req := scheduleReq("Massage", "2025-07-01", "10:00")
		req.PetName = ""
		_, err := svc.Schedule(context.Background(), userID, req)
		assert.ErrorIs(t, err, ErrInvalidServiceType)
	})

	t.Run("missing pet name rejected last", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		req := scheduleReq("Bath & Dry", "2025-07-01", "10:00")
		req.PetName = ""
		_, err := svc.Schedule(context.Background(), userID, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, repo.count())
	})

	t.Run("past date allowed by default", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		_, err := svc.Schedule(context.Background(), userID, scheduleReq("Bath & Dry", "2020-01-01", "09:00"))
		assert.NoError(t, err)
	})

	t.Run("past date rejected when configured", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := NewAppointmentService(
			repo,
			catalog.Default(),
			nil,
			&utils.Config{Booking: utils.BookingConfig{RejectPastDates: true}},
			zap.NewNop(),
		)

		_, err := svc.Schedule(context.Background(), userID, scheduleReq("Bath & Dry", "2020-01-01", "09:00"))
		assert.ErrorIs(t, err, ErrPastDate)
	})
}

// Many goroutines race for the same exclusive slot; exactly one wins.
func TestAppointmentService_Schedule_ConcurrentExclusive(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Schedule(context.Background(), uuid.New().String(),
				scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrSlotAlreadyBooked):
			conflicts++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, repo.count())
}

func TestAppointmentService_AvailableSlots(t *testing.T) {
	userID := uuid.New().String()

	t.Run("all slots free on empty day", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		resp, err := svc.AvailableSlots(context.Background(), "2025-07-01", "Hair Grooming")
		require.NoError(t, err)
		assert.Len(t, resp.AvailableSlots, 9)
	})

	t.Run("booked slot disappears for exclusive service", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		_, err := svc.Schedule(context.Background(), userID, scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		require.NoError(t, err)

		resp, err := svc.AvailableSlots(context.Background(), "2025-07-01", "Hair Grooming")
		require.NoError(t, err)
		assert.Len(t, resp.AvailableSlots, 8)
		assert.NotContains(t, resp.AvailableSlots, "10:00")
	})

	t.Run("shared service always reports every slot", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		for i := 0; i < 3; i++ {
			_, err := svc.Schedule(context.Background(), uuid.New().String(), scheduleReq("Nail Trimming", "2025-07-01", "10:00"))
			require.NoError(t, err)
		}

		resp, err := svc.AvailableSlots(context.Background(), "2025-07-01", "Nail Trimming")
		require.NoError(t, err)
		assert.Len(t, resp.AvailableSlots, 9)
	})

	t.Run("reads do not change availability", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		first, err := svc.AvailableSlots(context.Background(), "2025-07-01", "Hair Grooming")
		require.NoError(t, err)
		second, err := svc.AvailableSlots(context.Background(), "2025-07-01", "Hair Grooming")
		require.NoError(t, err)
		assert.Equal(t, first.AvailableSlots, second.AvailableSlots)
	})

	t.Run("unknown service rejected", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		_, err := svc.AvailableSlots(context.Background(), "2025-07-01", "Unicorn Polishing")
		assert.ErrorIs(t, err, ErrInvalidServiceType)
	})
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	t.Run("cancellation frees the slot", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)
		userID := uuid.New().String()

		booked, err := svc.Schedule(context.Background(), userID, scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		require.NoError(t, err)

		_, err = svc.UpdateStatus(context.Background(), userID, booked.ID,
			&request.UpdateAppointmentStatusRequest{Status: "Cancelled"})
		require.NoError(t, err)

		// Another customer can now take 10:00
		_, err = svc.Schedule(context.Background(), uuid.New().String(), scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		assert.NoError(t, err)
	})

	t.Run("cannot touch someone else's appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		booked, err := svc.Schedule(context.Background(), uuid.New().String(), scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		require.NoError(t, err)

		_, err = svc.UpdateStatus(context.Background(), uuid.New().String(), booked.ID,
			&request.UpdateAppointmentStatusRequest{Status: "Cancelled"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)
		userID := uuid.New().String()

		booked, err := svc.Schedule(context.Background(), userID, scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		require.NoError(t, err)

		_, err = svc.UpdateStatus(context.Background(), userID, booked.ID,
			&request.UpdateAppointmentStatusRequest{Status: "Teleported"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("admin can update any appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		svc := newTestAppointmentService(repo)

		booked, err := svc.Schedule(context.Background(), uuid.New().String(), scheduleReq("Hair Grooming", "2025-07-01", "10:00"))
		require.NoError(t, err)

		resp, err := svc.UpdateStatusAny(context.Background(), booked.ID,
			&request.UpdateAppointmentStatusRequest{Status: "Completed"})
		require.NoError(t, err)
		assert.Equal(t, entity.AppointmentStatusCompleted, resp.Status)
	})
}

func TestAppointmentService_GetUserAppointments(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newTestAppointmentService(repo)

	mine := uuid.New().String()
	other := uuid.New().String()

	_, err := svc.Schedule(context.Background(), mine, scheduleReq("Nail Trimming", "2025-07-01", "10:00"))
	require.NoError(t, err)
	_, err = svc.Schedule(context.Background(), mine, scheduleReq("Bath & Dry", "2025-07-02", "11:00"))
	require.NoError(t, err)
	_, err = svc.Schedule(context.Background(), other, scheduleReq("Nail Trimming", "2025-07-01", "12:00"))
	require.NoError(t, err)

	resp, err := svc.GetUserAppointments(context.Background(), mine)
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
}
