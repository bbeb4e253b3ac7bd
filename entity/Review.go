package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReplyRoleOwner = "owner"
	ReplyRoleAdmin = "admin"
)

// Review is tied to an attended appointment. At most one reply, written by
// the business owner or an admin.
type Review struct {
	gorm.Model
	BusinessID    uint `gorm:"index;not null" json:"businessId"`
	AppointmentID uint `gorm:"index;not null" json:"appointmentId"`
	UserID        uint `gorm:"index;not null" json:"userId"`
	User          User `json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	ReplyAuthorRole string     `json:"replyAuthorRole,omitempty"`
	ReplyAuthorID   *uint      `json:"replyAuthorId,omitempty"`
	ReplyContent    string     `json:"replyContent,omitempty"`
	RepliedAt       *time.Time `json:"repliedAt,omitempty"`
}
