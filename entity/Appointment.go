package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	gorm.Model
	// Reference is the public code embedded in the QR on the confirmation PDF.
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	BusinessID uint     `gorm:"index;not null" json:"businessId"`
	Business   Business `json:"-"`
	UserID     uint     `gorm:"index;not null" json:"userId"`
	User       User     `json:"-"`

	EmployeeID *uint     `gorm:"index" json:"employeeId,omitempty"`
	Employee   *Employee `json:"-"`

	AppointmentTime time.Time `gorm:"index;not null" json:"appointmentTime"`
	Status          string    `gorm:"not null;default:confirmed;index" json:"status"`
}
