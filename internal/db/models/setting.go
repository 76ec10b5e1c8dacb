package models

import "time"

// Setting is a named site setting edited in the admin panel.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"unique;size:100;not null"`
	Value     string `gorm:"type:text"`
	UpdatedBy string `gorm:"size:255"`
	UpdatedAt time.Time
}
