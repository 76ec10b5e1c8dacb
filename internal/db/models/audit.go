package models

import "time"

// AuditEntry records a login attempt, a logout or an admin change.
type AuditEntry struct {
	ID        string    `gorm:"primaryKey;size:36"`
	CreatedAt time.Time `gorm:"index"`
	Action    string    `gorm:"size:50;not null"`
	Actor     string    `gorm:"size:255"` // email of the acting account, as entered for failed logins
	Detail    string    `gorm:"size:1024"`
	Success   bool
	RemoteIP  string `gorm:"size:64"`
}
