package services

import (
	"errors"
	"time"

	"servibook/entity"
	"servibook/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AppointmentStore interface {
	CreateIfBelowCapacity(a *entity.Appointment, capacity int, slotStart, slotEnd time.Time) error
	FindByID(id uint) (*entity.Appointment, error)
	FindByUser(userID uint) ([]entity.Appointment, error)
	FindByBusinessWithUsers(businessID uint) ([]entity.Appointment, error)
	Save(a *entity.Appointment) error
}

type UserFinder interface {
	FindByID(id uint) (*entity.User, error)
}

// Notifier delivers booking mails as an out-of-process side effect. The
// lifecycle never depends on its outcome.
type Notifier interface {
	AppointmentConfirmed(user entity.User, biz entity.Business, appt entity.Appointment)
	AppointmentCancelled(user entity.User, biz entity.Business, appt entity.Appointment)
}

type AppointmentService struct {
	Appointments AppointmentStore
	Businesses   BusinessFinder
	Employees    EmployeeFinder
	Users        UserFinder
	Notifier     Notifier
	Log          *zap.Logger

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewAppointmentService(appointments AppointmentStore, businesses BusinessFinder, employees EmployeeFinder, users UserFinder, notifier Notifier, log *zap.Logger) *AppointmentService {
	return &AppointmentService{
		Appointments: appointments,
		Businesses:   businesses,
		Employees:    employees,
		Users:        users,
		Notifier:     notifier,
		Log:          log,
	}
}

func (s *AppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// accepted appointment_time layouts; frontends often omit the zone.
var appointmentTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseAppointmentTime normalizes every input to UTC. Slot keys, the
// capacity window and the stored value are all derived from the result, so
// offset-bearing input must collapse to the same wall clock the schedule
// and the booking counts use.
func parseAppointmentTime(s string) (time.Time, error) {
	for _, layout := range appointmentTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Minute), nil
		}
	}
	return time.Time{}, invalidf("invalid appointment_time, expected ISO 8601")
}

// Create books a slot. The capacity check and the insert run as one atomic
// conditional write in the repository, so two concurrent requests for the
// last free place cannot both succeed.
func (s *AppointmentService) Create(userID, businessID uint, timeStr string, employeeID *uint) (*entity.Appointment, error) {
	t, err := parseAppointmentTime(timeStr)
	if err != nil {
		return nil, err
	}

	biz, err := s.Businesses.FindByID(businessID)
	if err != nil {
		return nil, ErrNotFound
	}

	weekday := WeekdayName(t)
	day := scheduleFor(biz, weekday)
	if day == nil {
		return nil, invalidf("business is closed on %s", weekday)
	}
	slotKey := t.Format("15:04")
	if !containsSlot(GenerateSlots(*day), slotKey) {
		return nil, invalidf("requested time is not a bookable slot")
	}

	capacity := day.CapacityPerSlot
	if employeeID != nil {
		emp, err := s.Employees.FindByID(*employeeID)
		if err != nil || emp.BusinessID != businessID || !emp.Active {
			return nil, invalidf("employee not available")
		}
		if !allowedSlotFor(emp.AllowedSlots, weekday, slotKey) {
			return nil, invalidf("slot is not offered by this employee")
		}
		capacity = 1
	}

	slotStart := t
	slotEnd := slotStart.Add(time.Duration(day.SlotDurationMinutes) * time.Minute)

	appt := &entity.Appointment{
		Reference:       uuid.NewString(),
		BusinessID:      businessID,
		UserID:          userID,
		EmployeeID:      employeeID,
		AppointmentTime: t,
		Status:          entity.AppointmentConfirmed,
	}
	if err := s.Appointments.CreateIfBelowCapacity(appt, capacity, slotStart, slotEnd); err != nil {
		if errors.Is(err, repository.ErrSlotFull) {
			return nil, ErrSlotFull
		}
		return nil, err
	}

	s.notify(appt, biz, func(n Notifier, u entity.User) {
		n.AppointmentConfirmed(u, *biz, *appt)
	})
	return appt, nil
}

// Cancel flips a confirmed appointment to cancelled. Only the booking user
// may cancel, past appointments are rejected, and cancelling an already
// cancelled appointment returns the record unchanged.
func (s *AppointmentService) Cancel(userID, appointmentID uint) (*entity.Appointment, error) {
	appt, err := s.Appointments.FindByID(appointmentID)
	if err != nil {
		return nil, ErrNotFound
	}
	if appt.UserID != userID {
		// Do not reveal other users' appointments.
		return nil, ErrNotFound
	}
	if appt.Status == entity.AppointmentCancelled {
		return appt, nil
	}
	// Compare instants in UTC so naive and zoned stored values agree.
	if appt.AppointmentTime.UTC().Before(s.now().UTC()) {
		return nil, invalidf("appointment time has already passed")
	}

	appt.Status = entity.AppointmentCancelled
	if err := s.Appointments.Save(appt); err != nil {
		return nil, err
	}

	if biz, err := s.Businesses.FindByID(appt.BusinessID); err == nil {
		s.notify(appt, biz, func(n Notifier, u entity.User) {
			n.AppointmentCancelled(u, *biz, *appt)
		})
	}
	return appt, nil
}

func (s *AppointmentService) ListForUser(userID uint) ([]entity.Appointment, error) {
	return s.Appointments.FindByUser(userID)
}

// ListForBusiness is the owner view, user info attached, ascending by time.
func (s *AppointmentService) ListForBusiness(businessID uint) ([]entity.Appointment, error) {
	return s.Appointments.FindByBusinessWithUsers(businessID)
}

func (s *AppointmentService) notify(appt *entity.Appointment, biz *entity.Business, send func(Notifier, entity.User)) {
	if s.Notifier == nil {
		return
	}
	user, err := s.Users.FindByID(appt.UserID)
	if err != nil {
		s.Log.Warn("notification skipped: user lookup failed",
			zap.Uint("userId", appt.UserID), zap.Error(err))
		return
	}
	go send(s.Notifier, *user)
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func allowedSlotFor(allowed []entity.EmployeeSlot, weekday, slot string) bool {
	for _, a := range allowed {
		if a.Weekday == weekday && a.StartTime == slot {
			return true
		}
	}
	return false
}
