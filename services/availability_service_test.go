package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"servibook/entity"

	"go.uber.org/zap"
)

type fakeBusinesses struct {
	byID map[uint]*entity.Business
}

func (f *fakeBusinesses) FindByID(id uint) (*entity.Business, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, errors.New("record not found")
}

type fakeEmployees struct {
	byID map[uint]*entity.Employee
}

func (f *fakeEmployees) FindByID(id uint) (*entity.Employee, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, errors.New("record not found")
}

type fakeBookings struct {
	counts map[string]int
	err    error
}

func (f *fakeBookings) CountConfirmedBySlot(businessID uint, dayStart time.Time, employeeID *uint) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

// monday: 2026-08-31
const monday = "2026-08-31"

func mondayBusiness(capacity int) *entity.Business {
	b := &entity.Business{
		AppointmentMode: entity.ModeGeneric,
		Schedules: []entity.Schedule{
			{
				Weekday:             "monday",
				IsActive:            true,
				OpenTime:            "09:00",
				CloseTime:           "11:00",
				SlotDurationMinutes: 30,
				CapacityPerSlot:     capacity,
			},
		},
	}
	b.ID = 1
	return b
}

func newAvailability(biz *entity.Business, emps map[uint]*entity.Employee, bookings *fakeBookings) *AvailabilityService {
	byID := map[uint]*entity.Business{}
	if biz != nil {
		byID[biz.ID] = biz
	}
	if bookings == nil {
		bookings = &fakeBookings{counts: map[string]int{}}
	}
	return NewAvailabilityService(
		&fakeBusinesses{byID: byID},
		&fakeEmployees{byID: emps},
		bookings,
		zap.NewNop(),
	)
}

func TestAvailableSlotsInvalidDate(t *testing.T) {
	svc := newAvailability(mondayBusiness(1), nil, nil)
	_, err := svc.AvailableSlots(1, "31-08-2026", nil)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestAvailableSlotsUnknownBusinessIsEmpty(t *testing.T) {
	svc := newAvailability(nil, nil, nil)
	got, err := svc.AvailableSlots(99, monday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestAvailableSlotsClosedDayIsEmpty(t *testing.T) {
	biz := mondayBusiness(1)
	biz.Schedules[0].IsActive = false
	svc := newAvailability(biz, nil, nil)

	got, err := svc.AvailableSlots(1, monday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestAvailableSlotsAllFree(t *testing.T) {
	svc := newAvailability(mondayBusiness(1), nil, nil)
	got, err := svc.AvailableSlots(1, monday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlotsCapacityFiltering(t *testing.T) {
	bookings := &fakeBookings{counts: map[string]int{
		"09:00": 2, // full
		"09:30": 1, // one place left
	}}
	svc := newAvailability(mondayBusiness(2), nil, bookings)

	got, err := svc.AvailableSlots(1, monday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlotsEmployeeIntersection(t *testing.T) {
	emp := &entity.Employee{
		BusinessID: 1,
		Active:     true,
		AllowedSlots: []entity.EmployeeSlot{
			{Weekday: "monday", StartTime: "09:30"},
			{Weekday: "monday", StartTime: "10:30"},
			{Weekday: "tuesday", StartTime: "09:00"}, // other weekday, ignored
			{Weekday: "monday", StartTime: "12:00"},  // outside schedule, ignored
		},
	}
	emp.ID = 7
	empID := uint(7)

	bookings := &fakeBookings{counts: map[string]int{"09:30": 1}} // employee capacity is 1
	svc := newAvailability(mondayBusiness(3), map[uint]*entity.Employee{7: emp}, bookings)

	got, err := svc.AvailableSlots(1, monday, &empID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAvailableSlotsInactiveOrForeignEmployeeIsEmpty(t *testing.T) {
	inactive := &entity.Employee{BusinessID: 1, Active: false}
	inactive.ID = 7
	foreign := &entity.Employee{BusinessID: 2, Active: true}
	foreign.ID = 8

	svc := newAvailability(mondayBusiness(1), map[uint]*entity.Employee{7: inactive, 8: foreign}, nil)

	for _, id := range []uint{7, 8, 99} {
		id := id
		got, err := svc.AvailableSlots(1, monday, &id)
		if err != nil {
			t.Fatalf("employee %d: unexpected error: %v", id, err)
		}
		if len(got) != 0 {
			t.Errorf("employee %d: expected empty, got %v", id, got)
		}
	}
}

func TestAvailableSlotsCountErrorDegradesToEmpty(t *testing.T) {
	bookings := &fakeBookings{err: errors.New("db down")}
	svc := newAvailability(mondayBusiness(1), nil, bookings)

	got, err := svc.AvailableSlots(1, monday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}
