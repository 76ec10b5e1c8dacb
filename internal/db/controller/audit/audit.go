// Package audit writes and reads the admin audit log.
package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teca-org/teca-web/internal/db/models"
)

// Actions recorded in the audit log.
const (
	ActionLogin         = "login"
	ActionLogout        = "logout"
	ActionNewsCreate    = "news.create"
	ActionPayamUpdate   = "payam.update"
	ActionSettingUpdate = "setting.update"
)

// DefaultLimit caps List when no limit is given.
const DefaultLimit = 100

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrEmptyAction is returned when an entry has no action.
	ErrEmptyAction = errors.New("audit action cannot be empty")
)

// Entry is the input of Record.
type Entry struct {
	Action   string
	Actor    string
	Detail   string
	Success  bool
	RemoteIP string
}

// Record appends an entry to the audit log.
func Record(ctx context.Context, db *gorm.DB, e Entry) (*models.AuditEntry, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if e.Action == "" {
		return nil, ErrEmptyAction
	}

	row := &models.AuditEntry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Action:    e.Action,
		Actor:     e.Actor,
		Detail:    e.Detail,
		Success:   e.Success,
		RemoteIP:  e.RemoteIP,
	}

	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}

	return row, nil
}

// List returns the newest entries first. A limit of zero or less means DefaultLimit.
func List(ctx context.Context, db *gorm.DB, limit int) ([]models.AuditEntry, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	var entries []models.AuditEntry

	result := db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
