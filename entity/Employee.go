package entity

import (
	"gorm.io/gorm"
)

// Employee is only meaningful for businesses in per_employee mode.
// Capacity per employee per slot is fixed at 1.
type Employee struct {
	gorm.Model
	BusinessID uint   `gorm:"index;not null" json:"businessId"`
	Name       string `gorm:"not null" json:"name"`
	Active     bool   `gorm:"default:true;index" json:"active"`

	AllowedSlots []EmployeeSlot `gorm:"constraint:OnDelete:CASCADE" json:"allowedSlots"`
}

// EmployeeSlot is one "HH:MM" start time this employee may serve on a
// weekday. Position preserves the order the owner submitted.
type EmployeeSlot struct {
	gorm.Model
	EmployeeID uint   `gorm:"index;not null" json:"-"`
	Weekday    string `gorm:"not null" json:"weekday"`
	StartTime  string `gorm:"not null" json:"startTime"`
	Position   int    `gorm:"not null" json:"-"`
}
