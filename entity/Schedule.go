package entity

import (
	"gorm.io/gorm"
)

// Weekdays in schedule order, Monday first.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Schedule is one weekday row of a business's weekly timetable.
// Times are business-local wall clock, "HH:MM", no timezone stored.
type Schedule struct {
	gorm.Model
	BusinessID uint   `gorm:"not null;uniqueIndex:idx_schedule_business_weekday" json:"businessId"`
	Weekday    string `gorm:"not null;uniqueIndex:idx_schedule_business_weekday" json:"weekday"`

	IsActive            bool   `json:"isActive"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	CapacityPerSlot     int    `json:"capacityPerSlot"`
}
