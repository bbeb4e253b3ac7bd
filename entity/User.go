package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email             string `gorm:"uniqueIndex;not null" json:"email"`
	Password          string `json:"-"`
	FullName          string `json:"fullName"`
	PhoneNumber       string `json:"phoneNumber"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	Role              string `gorm:"not null;default:customer" json:"role"`

	// Relations, preload only when needed
	BusinessOwned     *Business          `gorm:"foreignKey:OwnerID" json:"-"`
	OwnerApplications []OwnerApplication `json:"-"`
	Appointments      []Appointment      `json:"-"`
	Reviews           []Review           `json:"-"`
}
