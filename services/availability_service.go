package services

import (
	"time"

	"servibook/entity"

	"go.uber.org/zap"
)

// Read-side dependencies are interfaces so tests can swap in fakes.

type BusinessFinder interface {
	FindByID(id uint) (*entity.Business, error)
}

type EmployeeFinder interface {
	FindByID(id uint) (*entity.Employee, error)
}

type BookingCounter interface {
	CountConfirmedBySlot(businessID uint, dayStart time.Time, employeeID *uint) (map[string]int, error)
}

// AvailabilityService computes the free slots for a business, date and
// optional employee. Apart from a malformed date (client error) every
// anomaly degrades to an empty list so the booking UI never breaks; the
// underlying cause is still logged.
type AvailabilityService struct {
	Businesses BusinessFinder
	Employees  EmployeeFinder
	Bookings   BookingCounter
	Log        *zap.Logger
}

func NewAvailabilityService(businesses BusinessFinder, employees EmployeeFinder, bookings BookingCounter, log *zap.Logger) *AvailabilityService {
	return &AvailabilityService{Businesses: businesses, Employees: employees, Bookings: bookings, Log: log}
}

// AvailableSlots resolves the ordered list of bookable "HH:MM" start times.
func (s *AvailabilityService) AvailableSlots(businessID uint, dateStr string, employeeID *uint) ([]string, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, invalidf("invalid date format, expected YYYY-MM-DD")
	}
	weekday := WeekdayName(date)

	biz, err := s.Businesses.FindByID(businessID)
	if err != nil {
		s.Log.Warn("availability: business lookup failed",
			zap.Uint("businessId", businessID), zap.Error(err))
		return []string{}, nil
	}
	if len(biz.Schedules) == 0 {
		// No schedule configured yet: zero availability, not an error.
		s.Log.Warn("availability: business has no schedule",
			zap.Uint("businessId", businessID))
		return []string{}, nil
	}

	day := scheduleFor(biz, weekday)
	if day == nil {
		return []string{}, nil
	}

	candidates := GenerateSlots(*day)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	capacity := day.CapacityPerSlot
	if employeeID != nil {
		emp, err := s.Employees.FindByID(*employeeID)
		if err != nil {
			s.Log.Warn("availability: employee lookup failed",
				zap.Uint("employeeId", *employeeID), zap.Error(err))
			return []string{}, nil
		}
		if emp.BusinessID != businessID || !emp.Active {
			return []string{}, nil
		}
		candidates = intersectAllowed(candidates, emp.AllowedSlots, weekday)
		capacity = 1
	}

	counts, err := s.Bookings.CountConfirmedBySlot(biz.ID, startOfDay(date), employeeID)
	if err != nil {
		s.Log.Warn("availability: booking count failed",
			zap.Uint("businessId", businessID), zap.Error(err))
		return []string{}, nil
	}

	free := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if counts[slot] < capacity {
			free = append(free, slot)
		}
	}
	return free, nil
}

// intersectAllowed keeps the generator's order, filtered to the employee's
// allow-list for the weekday.
func intersectAllowed(candidates []string, allowed []entity.EmployeeSlot, weekday string) []string {
	permitted := make(map[string]bool, len(allowed))
	for _, s := range allowed {
		if s.Weekday == weekday {
			permitted[s.StartTime] = true
		}
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if permitted[c] {
			out = append(out, c)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
