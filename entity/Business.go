package entity

import (
	"gorm.io/gorm"
)

const (
	BusinessDraft     = "draft"
	BusinessPublished = "published"
)

const (
	ModeGeneric     = "generic"
	ModePerEmployee = "per_employee"
)

type Business struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	LogoURL     string `json:"logoUrl"`

	Status          string `gorm:"not null;default:draft;index" json:"status"`
	AppointmentMode string `gorm:"not null;default:generic" json:"appointmentMode"`

	// Denormalized review aggregate, recomputed on every review mutation.
	AvgRating    float64 `json:"avgRating"`
	ReviewsCount int     `json:"reviewsCount"`

	OwnerID uint `gorm:"uniqueIndex;not null" json:"ownerId"` // one business per owner
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Photos       []BusinessPhoto `gorm:"constraint:OnDelete:CASCADE" json:"photos"`
	Categories   []Category      `gorm:"many2many:business_categories" json:"categories"`
	Schedules    []Schedule      `gorm:"constraint:OnDelete:CASCADE" json:"schedule"`
	Employees    []Employee      `json:"-"`
	Appointments []Appointment   `json:"-"`
	Reviews      []Review        `json:"-"`
}
