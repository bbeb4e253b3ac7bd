package services

import (
	"errors"
	"testing"

	"servibook/entity"
)

type fakeEmployeeStore struct {
	byID   map[uint]*entity.Employee
	slots  map[uint][]entity.EmployeeSlot
	nextID uint
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{
		byID:  map[uint]*entity.Employee{},
		slots: map[uint][]entity.EmployeeSlot{},
	}
}

func (f *fakeEmployeeStore) Create(emp *entity.Employee) error {
	f.nextID++
	emp.ID = f.nextID
	f.byID[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeStore) FindByID(id uint) (*entity.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	out := *emp
	out.AllowedSlots = f.slots[id]
	return &out, nil
}

func (f *fakeEmployeeStore) FindByBusiness(businessID uint, includeInactive bool) ([]entity.Employee, error) {
	var out []entity.Employee
	for _, e := range f.byID {
		if e.BusinessID == businessID && (includeInactive || e.Active) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeStore) Update(employeeID uint, updates map[string]any) error {
	emp, ok := f.byID[employeeID]
	if !ok {
		return errors.New("record not found")
	}
	if v, ok := updates["name"]; ok {
		emp.Name = v.(string)
	}
	if v, ok := updates["active"]; ok {
		emp.Active = v.(bool)
	}
	return nil
}

func (f *fakeEmployeeStore) Delete(id uint) error {
	delete(f.byID, id)
	delete(f.slots, id)
	return nil
}

func (f *fakeEmployeeStore) ReplaceAllowedSlots(employeeID uint, slots []entity.EmployeeSlot) error {
	for i := range slots {
		slots[i].EmployeeID = employeeID
		slots[i].Position = i
	}
	f.slots[employeeID] = slots
	return nil
}

type ownerBusinesses struct{ biz *entity.Business }

func (m *ownerBusinesses) FindByOwnerID(ownerID uint) (*entity.Business, error) {
	if m.biz != nil && m.biz.OwnerID == ownerID {
		return m.biz, nil
	}
	return nil, errors.New("record not found")
}

func newEmployeeService(t *testing.T) (*EmployeeService, *fakeEmployeeStore, *entity.Employee) {
	t.Helper()
	biz := &entity.Business{OwnerID: 7}
	biz.ID = 1
	store := newFakeEmployeeStore()
	svc := NewEmployeeService(store, &ownerBusinesses{biz: biz})

	emp, err := svc.Create(7, "Marta", true)
	if err != nil {
		t.Fatalf("create employee failed: %v", err)
	}
	return svc, store, emp
}

func TestSetAllowedSlotsNormalizesWeekdayCase(t *testing.T) {
	svc, store, emp := newEmployeeService(t)

	got, err := svc.SetAllowedSlots(7, emp.ID, map[string][]string{
		"Monday": {"09:00", "09:30"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.AllowedSlots) != 2 {
		t.Fatalf("stored %d slots, want 2: %+v", len(got.AllowedSlots), got.AllowedSlots)
	}
	for _, s := range store.slots[emp.ID] {
		if s.Weekday != "monday" {
			t.Errorf("weekday stored as %q, want monday", s.Weekday)
		}
	}
}

func TestSetAllowedSlotsPadsTimes(t *testing.T) {
	svc, store, emp := newEmployeeService(t)

	if _, err := svc.SetAllowedSlots(7, emp.ID, map[string][]string{
		"monday": {"9:00", "9:5"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots := store.slots[emp.ID]
	if len(slots) != 2 || slots[0].StartTime != "09:00" || slots[1].StartTime != "09:05" {
		t.Errorf("stored slots = %+v, want zero-padded 09:00 and 09:05", slots)
	}
}

func TestSetAllowedSlotsOrdersByWeekday(t *testing.T) {
	svc, store, emp := newEmployeeService(t)

	if _, err := svc.SetAllowedSlots(7, emp.ID, map[string][]string{
		"tuesday": {"10:00"},
		"MONDAY":  {"09:00"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots := store.slots[emp.ID]
	if len(slots) != 2 || slots[0].Weekday != "monday" || slots[1].Weekday != "tuesday" {
		t.Errorf("stored slots = %+v, want monday before tuesday", slots)
	}
}

func TestSetAllowedSlotsRejectsBadInput(t *testing.T) {
	svc, _, emp := newEmployeeService(t)

	if _, err := svc.SetAllowedSlots(7, emp.ID, map[string][]string{
		"funday": {"09:00"},
	}); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown weekday: expected ErrInvalid, got %v", err)
	}
	if _, err := svc.SetAllowedSlots(7, emp.ID, map[string][]string{
		"monday": {"25:00"},
	}); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad time: expected ErrInvalid, got %v", err)
	}
}

func TestSetAllowedSlotsOwnershipGuard(t *testing.T) {
	svc, _, emp := newEmployeeService(t)

	if _, err := svc.SetAllowedSlots(99, emp.ID, map[string][]string{
		"monday": {"09:00"},
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign owner: expected ErrNotFound, got %v", err)
	}
}
