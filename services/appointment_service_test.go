package services

import (
	"errors"
	"testing"
	"time"

	"servibook/entity"
	"servibook/repository"

	"go.uber.org/zap"
)

type fakeAppointments struct {
	byID     map[uint]*entity.Appointment
	nextID   uint
	created  []*entity.Appointment
	capacity int // capacity passed to the last conditional insert
	full     bool
}

func (f *fakeAppointments) CreateIfBelowCapacity(a *entity.Appointment, capacity int, slotStart, slotEnd time.Time) error {
	f.capacity = capacity
	if f.full {
		return repository.ErrSlotFull
	}
	f.nextID++
	a.ID = f.nextID
	if f.byID == nil {
		f.byID = map[uint]*entity.Appointment{}
	}
	f.byID[a.ID] = a
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAppointments) FindByID(id uint) (*entity.Appointment, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeAppointments) FindByUser(userID uint) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.byID {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) FindByBusinessWithUsers(businessID uint) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointments) Save(a *entity.Appointment) error {
	f.byID[a.ID] = a
	return nil
}

type fakeUsers struct{ byID map[uint]*entity.User }

func (f *fakeUsers) FindByID(id uint) (*entity.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func newAppointmentService(biz *entity.Business, emps map[uint]*entity.Employee, store *fakeAppointments) *AppointmentService {
	byID := map[uint]*entity.Business{}
	if biz != nil {
		byID[biz.ID] = biz
	}
	svc := NewAppointmentService(
		store,
		&fakeBusinesses{byID: byID},
		&fakeEmployees{byID: emps},
		&fakeUsers{byID: map[uint]*entity.User{}},
		nil,
		zap.NewNop(),
	)
	// fixed clock: the day before the monday fixture
	svc.Now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateAppointmentConfirmed(t *testing.T) {
	store := &fakeAppointments{}
	svc := newAppointmentService(mondayBusiness(2), nil, store)

	appt, err := svc.Create(42, 1, "2026-08-31T09:30:00Z", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != entity.AppointmentConfirmed {
		t.Errorf("status = %q, want confirmed", appt.Status)
	}
	if appt.Reference == "" {
		t.Error("reference not generated")
	}
	if appt.UserID != 42 || appt.BusinessID != 1 {
		t.Errorf("wrong ownership: %+v", appt)
	}
	if store.capacity != 2 {
		t.Errorf("capacity = %d, want schedule capacity 2", store.capacity)
	}
}

func TestCreateAppointmentRejectsNonSlotTime(t *testing.T) {
	svc := newAppointmentService(mondayBusiness(2), nil, &fakeAppointments{})

	// 09:10 is inside opening hours but not a generated start time.
	if _, err := svc.Create(42, 1, "2026-08-31T09:10:00Z", nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("off-grid time: expected ErrInvalid, got %v", err)
	}
	// Sunday has no schedule row at all.
	if _, err := svc.Create(42, 1, "2026-08-30T09:00:00Z", nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("closed day: expected ErrInvalid, got %v", err)
	}
	if _, err := svc.Create(42, 1, "not-a-time", nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("garbage time: expected ErrInvalid, got %v", err)
	}
}

func TestCreateAppointmentNormalizesOffsetInput(t *testing.T) {
	store := &fakeAppointments{}
	svc := newAppointmentService(mondayBusiness(2), nil, store)

	// 16:30+07:00 is 09:30 UTC, a valid monday slot.
	appt, err := svc.Create(42, 1, "2026-08-31T16:30:00+07:00", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	if !appt.AppointmentTime.Equal(want) {
		t.Errorf("stored time = %v, want %v", appt.AppointmentTime, want)
	}
	if appt.AppointmentTime.Location() != time.UTC {
		t.Errorf("stored location = %v, want UTC", appt.AppointmentTime.Location())
	}
	if key := appt.AppointmentTime.Format("15:04"); key != "09:30" {
		t.Errorf("slot key = %q, want 09:30", key)
	}

	// 09:30+07:00 is 02:30 UTC, which is outside opening hours.
	if _, err := svc.Create(42, 1, "2026-08-31T09:30:00+07:00", nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("offset wall-clock trick: expected ErrInvalid, got %v", err)
	}
}

func TestCreateAppointmentSlotFull(t *testing.T) {
	store := &fakeAppointments{full: true}
	svc := newAppointmentService(mondayBusiness(1), nil, store)

	_, err := svc.Create(42, 1, "2026-08-31T09:00:00Z", nil)
	if !errors.Is(err, ErrSlotFull) {
		t.Fatalf("expected ErrSlotFull, got %v", err)
	}
}

func TestCreateAppointmentWithEmployee(t *testing.T) {
	emp := &entity.Employee{
		BusinessID:   1,
		Active:       true,
		AllowedSlots: []entity.EmployeeSlot{{Weekday: "monday", StartTime: "09:30"}},
	}
	emp.ID = 7
	empID := uint(7)

	store := &fakeAppointments{}
	svc := newAppointmentService(mondayBusiness(3), map[uint]*entity.Employee{7: emp}, store)

	appt, err := svc.Create(42, 1, "2026-08-31T09:30:00Z", &empID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.EmployeeID == nil || *appt.EmployeeID != 7 {
		t.Errorf("employee not recorded: %+v", appt.EmployeeID)
	}
	if store.capacity != 1 {
		t.Errorf("capacity = %d, per-employee bookings must use 1", store.capacity)
	}

	// Outside the employee's allow-list.
	if _, err := svc.Create(42, 1, "2026-08-31T10:00:00Z", &empID); !errors.Is(err, ErrInvalid) {
		t.Errorf("disallowed slot: expected ErrInvalid, got %v", err)
	}

	emp.Active = false
	if _, err := svc.Create(42, 1, "2026-08-31T09:30:00Z", &empID); !errors.Is(err, ErrInvalid) {
		t.Errorf("inactive employee: expected ErrInvalid, got %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	future := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	appt := &entity.Appointment{
		BusinessID:      1,
		UserID:          42,
		AppointmentTime: future,
		Status:          entity.AppointmentConfirmed,
	}
	appt.ID = 1
	store := &fakeAppointments{byID: map[uint]*entity.Appointment{1: appt}}
	svc := newAppointmentService(mondayBusiness(1), nil, store)

	got, err := svc.Cancel(42, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entity.AppointmentCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}

	// Cancelling again is a no-op, not an error.
	again, err := svc.Cancel(42, 1)
	if err != nil {
		t.Fatalf("second cancel: unexpected error: %v", err)
	}
	if again.Status != entity.AppointmentCancelled {
		t.Errorf("second cancel changed status to %q", again.Status)
	}
}

func TestCancelAppointmentGuards(t *testing.T) {
	past := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	pastAppt := &entity.Appointment{UserID: 42, AppointmentTime: past, Status: entity.AppointmentConfirmed}
	pastAppt.ID = 1
	store := &fakeAppointments{byID: map[uint]*entity.Appointment{1: pastAppt}}
	svc := newAppointmentService(mondayBusiness(1), nil, store)

	if _, err := svc.Cancel(42, 1); !errors.Is(err, ErrInvalid) {
		t.Errorf("past appointment: expected ErrInvalid, got %v", err)
	}
	if _, err := svc.Cancel(99, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign appointment: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Cancel(42, 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing appointment: expected ErrNotFound, got %v", err)
	}
}
