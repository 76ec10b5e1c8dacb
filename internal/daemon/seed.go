package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/teca-org/teca-web/internal/config"
	"github.com/teca-org/teca-web/internal/db/controller/account"
	"github.com/teca-org/teca-web/internal/db/controller/setting"
	"github.com/teca-org/teca-web/internal/web/handler"
)

// seed writes the configured admin accounts and the default site settings.
func seed(cfg *config.Config, db *gorm.DB) error {
	if len(cfg.Accounts) == 0 {
		log.Warn().Msg("no accounts configured: the admin panel cannot be used")
	}

	if err := account.Seed(db, cfg.Accounts); err != nil {
		return errors.Wrap(err, "failed to seed accounts")
	}

	// settings edited in the admin panel are kept
	if _, err := setting.Get(db, handler.SettingContactEmail); errors.Is(err, setting.ErrSettingNotFound) {
		if _, err = setting.Set(db, handler.SettingContactEmail, handler.DefaultContactEmail, "seed"); err != nil {
			return errors.Wrap(err, "failed to seed settings")
		}
	}

	log.Info().Int("accounts", len(cfg.Accounts)).Msg("database seeded")

	return nil
}
