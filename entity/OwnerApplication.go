package entity

import (
	"gorm.io/gorm"
)

// Shared by owner applications and category requests.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// OwnerApplication is a customer's request to become a business owner.
// Approving it flips the user role to owner; the business itself is
// registered by the owner afterwards.
type OwnerApplication struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	BusinessName        string `gorm:"not null" json:"businessName"`
	BusinessDescription string `json:"businessDescription"`
	Address             string `json:"address"`
	LogoURL             string `json:"logoUrl"`
	Status              string `gorm:"not null;default:pending;index" json:"status"`
}
