// Package account keeps the admin credential table in the database.
package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/config"
	"github.com/teca-org/teca-web/internal/db/models"
)

const emailQueryPattern = "email = ?"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrEmptyPasswordHash is returned when a seeded account has no password hash.
	ErrEmptyPasswordHash = errors.New("account password hash cannot be empty")
)

// Store is a gorm backed auth.CredentialStore.
type Store struct {
	db *gorm.DB
}

// NewStore creates a credential store on db.
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &Store{db: db}, nil
}

// Lookup implements auth.CredentialStore. The comparison is repeated in Go
// because MySQL compares strings case-insensitively by default.
func (s *Store) Lookup(ctx context.Context, email string) (auth.Credential, error) {
	var a models.Account

	result := s.db.WithContext(ctx).Where(emailQueryPattern, email).First(&a)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return auth.Credential{}, auth.ErrCredentialNotFound
		}

		return auth.Credential{}, result.Error
	}

	if a.Email != email {
		return auth.Credential{}, auth.ErrCredentialNotFound
	}

	return toCredential(a)
}

// List returns all accounts ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account

	if err := s.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

// Seed writes the configured accounts. Existing rows with the same id are
// updated so config changes take effect on the next start.
func Seed(db *gorm.DB, accounts []config.Account) error {
	if db == nil {
		return ErrDBNil
	}

	rows := make([]models.Account, 0, len(accounts))
	seen := make(map[string]bool, len(accounts))

	for _, a := range accounts {
		role, err := auth.ParseRole(a.Role)
		if err != nil {
			return fmt.Errorf("account %q: %w", a.Email, err)
		}

		id := auth.Identity{ID: a.ID, Name: a.Name, Email: a.Email, Role: role}
		if err = id.Validate(); err != nil {
			return fmt.Errorf("account %q: %w", a.Email, err)
		}

		if a.PasswordHash == "" {
			return fmt.Errorf("account %q: %w", a.Email, ErrEmptyPasswordHash)
		}

		if seen[a.Email] {
			return fmt.Errorf("%w: %s", auth.ErrDuplicateEmail, a.Email)
		}

		seen[a.Email] = true

		rows = append(rows, models.Account{
			ID:           a.ID,
			Name:         a.Name,
			Email:        a.Email,
			Role:         string(role),
			PasswordHash: a.PasswordHash,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role", "password_hash", "updated_at"}),
	}).Create(&rows).Error
}

func toCredential(a models.Account) (auth.Credential, error) {
	role, err := auth.ParseRole(a.Role)
	if err != nil {
		return auth.Credential{}, fmt.Errorf("account %q: %w", a.ID, err)
	}

	return auth.Credential{
		Identity:     auth.Identity{ID: a.ID, Name: a.Name, Email: a.Email, Role: role},
		PasswordHash: a.PasswordHash,
	}, nil
}
