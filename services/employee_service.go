package services

import (
	"fmt"
	"strings"

	"servibook/entity"
)

type EmployeeStore interface {
	Create(emp *entity.Employee) error
	FindByID(id uint) (*entity.Employee, error)
	FindByBusiness(businessID uint, includeInactive bool) ([]entity.Employee, error)
	Update(employeeID uint, updates map[string]any) error
	Delete(id uint) error
	ReplaceAllowedSlots(employeeID uint, slots []entity.EmployeeSlot) error
}

type OwnedBusinessFinder interface {
	FindByOwnerID(ownerID uint) (*entity.Business, error)
}

// EmployeeService manages a business's staff and their per-weekday slot
// allow-lists.
type EmployeeService struct {
	Employees  EmployeeStore
	Businesses OwnedBusinessFinder
}

func NewEmployeeService(employees EmployeeStore, businesses OwnedBusinessFinder) *EmployeeService {
	return &EmployeeService{Employees: employees, Businesses: businesses}
}

// ListForBusiness is the public read used by the booking UI.
func (s *EmployeeService) ListForBusiness(businessID uint, includeInactive bool) ([]entity.Employee, error) {
	return s.Employees.FindByBusiness(businessID, includeInactive)
}

func (s *EmployeeService) Create(ownerID uint, name string, active bool) (*entity.Employee, error) {
	biz, err := s.Businesses.FindByOwnerID(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("name is required")
	}

	emp := &entity.Employee{BusinessID: biz.ID, Name: name, Active: active}
	if err := s.Employees.Create(emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// ownedEmployee loads the employee and checks it belongs to the caller's
// business.
func (s *EmployeeService) ownedEmployee(ownerID, employeeID uint) (*entity.Employee, error) {
	biz, err := s.Businesses.FindByOwnerID(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	emp, err := s.Employees.FindByID(employeeID)
	if err != nil || emp.BusinessID != biz.ID {
		return nil, ErrNotFound
	}
	return emp, nil
}

func (s *EmployeeService) Update(ownerID, employeeID uint, name *string, active *bool) (*entity.Employee, error) {
	emp, err := s.ownedEmployee(ownerID, employeeID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, invalidf("name cannot be empty")
		}
		updates["name"] = trimmed
	}
	if active != nil {
		updates["active"] = *active
	}
	if len(updates) == 0 {
		return nil, invalidf("nothing to update")
	}

	if err := s.Employees.Update(emp.ID, updates); err != nil {
		return nil, err
	}
	return s.Employees.FindByID(emp.ID)
}

func (s *EmployeeService) Delete(ownerID, employeeID uint) error {
	emp, err := s.ownedEmployee(ownerID, employeeID)
	if err != nil {
		return err
	}
	return s.Employees.Delete(emp.ID)
}

// SetAllowedSlots replaces the employee's allow-list. Weekday keys and
// start times are normalized before storage (lowercase weekday, zero-padded
// "HH:MM") so stored values always compare equal to generated slots. Order
// within a weekday is preserved.
func (s *EmployeeService) SetAllowedSlots(ownerID, employeeID uint, allowed map[string][]string) (*entity.Employee, error) {
	emp, err := s.ownedEmployee(ownerID, employeeID)
	if err != nil {
		return nil, err
	}

	normalized := make(map[string][]string, len(allowed))
	for weekday, starts := range allowed {
		key := strings.ToLower(strings.TrimSpace(weekday))
		if !isWeekday(key) {
			return nil, invalidf("unknown weekday %q", weekday)
		}
		normalized[key] = append(normalized[key], starts...)
	}

	var slots []entity.EmployeeSlot
	for _, weekday := range entity.Weekdays {
		for _, start := range normalized[weekday] {
			m, ok := ParseClock(strings.TrimSpace(start))
			if !ok {
				return nil, invalidf("%s: %q is not a valid HH:MM time", weekday, start)
			}
			slots = append(slots, entity.EmployeeSlot{
				Weekday:   weekday,
				StartTime: fmt.Sprintf("%02d:%02d", m/60, m%60),
			})
		}
	}

	if err := s.Employees.ReplaceAllowedSlots(emp.ID, slots); err != nil {
		return nil, err
	}
	return s.Employees.FindByID(emp.ID)
}
