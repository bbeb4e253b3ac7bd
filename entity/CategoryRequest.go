package entity

import (
	"gorm.io/gorm"
)

// CategoryRequest is an owner's proposal for a new business category,
// approved or rejected by an admin.
type CategoryRequest struct {
	gorm.Model
	OwnerID uint `gorm:"index;not null" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	CategoryName string `gorm:"not null" json:"categoryName"`
	Reason       string `json:"reason"`
	EvidenceURL  string `json:"evidenceUrl"`
	Status       string `gorm:"not null;default:pending;index" json:"status"`
}
