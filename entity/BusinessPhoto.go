package entity

import (
	"gorm.io/gorm"
)

// BusinessPhoto keeps the gallery order via Position.
type BusinessPhoto struct {
	gorm.Model
	BusinessID uint   `gorm:"index;not null" json:"-"`
	URL        string `gorm:"not null" json:"url"`
	Position   int    `gorm:"not null" json:"position"`
}
