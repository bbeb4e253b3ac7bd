// repository/appointment_repository.go
package repository

import (
	"time"

	"servibook/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository struct {
	DB *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

func (r *AppointmentRepository) FindByID(id uint) (*entity.Appointment, error) {
	var a entity.Appointment
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) FindByUser(userID uint) ([]entity.Appointment, error) {
	var list []entity.Appointment
	err := r.DB.Where("user_id = ?", userID).Find(&list).Error
	return list, err
}

// FindByBusinessWithUsers is the owner-facing listing, ascending by time.
func (r *AppointmentRepository) FindByBusinessWithUsers(businessID uint) ([]entity.Appointment, error) {
	var list []entity.Appointment
	err := r.DB.Preload("User").
		Where("business_id = ?", businessID).
		Order("appointment_time ASC").
		Find(&list).Error
	return list, err
}

// CountConfirmedBySlot is the booking index: confirmed appointments of the
// business on [dayStart, dayStart+24h), bucketed by "HH:MM" start time.
// Cancelled appointments never count toward capacity.
func (r *AppointmentRepository) CountConfirmedBySlot(businessID uint, dayStart time.Time, employeeID *uint) (map[string]int, error) {
	q := r.DB.Model(&entity.Appointment{}).
		Where("business_id = ? AND status = ?", businessID, entity.AppointmentConfirmed).
		Where("appointment_time >= ? AND appointment_time < ?", dayStart, dayStart.Add(24*time.Hour))
	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var rows []entity.Appointment
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, a := range rows {
		counts[a.AppointmentTime.Format("15:04")]++
	}
	return counts, nil
}

// LatestAttended returns the user's most recent past, non-cancelled
// appointment with the business, or nil when there is none.
func (r *AppointmentRepository) LatestAttended(userID, businessID uint, now time.Time) (*entity.Appointment, error) {
	var a entity.Appointment
	err := r.DB.
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Where("status = ? AND appointment_time <= ?", entity.AppointmentConfirmed, now).
		Order("appointment_time DESC").
		First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Save(a *entity.Appointment) error {
	return r.DB.Save(a).Error
}

// CreateIfBelowCapacity inserts the appointment only if the slot still has
// room, inside one transaction. The business row is locked first so two
// concurrent bookings for the same business serialize instead of both
// passing the count check (check-then-act race from the old design).
func (r *AppointmentRepository) CreateIfBelowCapacity(a *entity.Appointment, capacity int, slotStart, slotEnd time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var biz entity.Business
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&biz, a.BusinessID).Error; err != nil {
			return err
		}

		q := tx.Model(&entity.Appointment{}).
			Where("business_id = ? AND status = ?", a.BusinessID, entity.AppointmentConfirmed).
			Where("appointment_time >= ? AND appointment_time < ?", slotStart, slotEnd)
		if a.EmployeeID != nil {
			q = q.Where("employee_id = ?", *a.EmployeeID)
		}

		var booked int64
		if err := q.Count(&booked).Error; err != nil {
			return err
		}
		if booked >= int64(capacity) {
			return ErrSlotFull
		}
		return tx.Create(a).Error
	})
}
