// Package models contains database model definitions.
package models

import "time"

// Account is one entry of the admin credential table.
type Account struct {
	// ID is the identifier carried by the session identity.
	ID string `gorm:"primaryKey;size:64"`
	// Name is the display name of the account holder.
	Name string `gorm:"size:255;not null"`
	// Email is the login name. Matching is exact.
	Email string `gorm:"unique;size:255;not null"`
	// Role is one of the admin roles, for example EDITOR.
	Role string `gorm:"type:varchar(20);not null"`
	// PasswordHash is the Argon2id hash of the password.
	PasswordHash string `gorm:"size:255;not null"`
	// CreatedAt is the timestamp when the account was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the account was last updated (managed by GORM).
	UpdatedAt time.Time
}
