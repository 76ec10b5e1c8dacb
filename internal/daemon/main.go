// Package daemon wires the database, the session storage and the web service.
package daemon

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	sessionmemory "github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/teca-org/teca-web/internal/config"
	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/db/controller/account"
	"github.com/teca-org/teca-web/internal/db/dsn"
	"github.com/teca-org/teca-web/internal/db/models"
	"github.com/teca-org/teca-web/internal/logger/adapter/stdlogger"
	"github.com/teca-org/teca-web/internal/web"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/session"
)

// ErrConfigNil is returned by New without a configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	storage    fiber.Storage
	webService *web.Service
}

// Start serves http until SIGINT or SIGTERM and then shuts down gracefully.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	go func() {
		log.Info().Str("addr", addr).Msg("starting http server")

		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	d.webService.WaitShutdown()

	if err := d.storage.Close(); err != nil {
		return errors.Wrap(err, "failed to close session storage")
	}

	return nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	if err = seed(cfg, db); err != nil {
		return nil, err
	}

	storage, err := newSessionStorage(cfg)
	if err != nil {
		return nil, err
	}

	credentials, err := account.NewStore(db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create account store")
	}

	sessions, err := session.New(storage, cfg, credentials)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session manager")
	}

	webService, err := web.New(&handler.Env{
		Cfg:      cfg,
		DB:       db,
		Content:  content.NewCanonicalStore(),
		Sessions: sessions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		storage:    storage,
		webService: webService,
	}, nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dsn.Dialector(cfg.DB)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if cfg.DevMode {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			stdlogger.New().Component("gorm").WithPrintfLevel(zerolog.DebugLevel),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if cfg.DB.GormEngine == config.GormEngineSQLite {
		// sqlite allows a single writer
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to access sql database")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = db.AutoMigrate(
		&models.Account{},
		&models.AuditEntry{},
		&models.Setting{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}

// newSessionStorage opens the identity storage selected by the configuration.
// The sql storages share the database server of the gorm connection.
func newSessionStorage(cfg *config.Config) (fiber.Storage, error) {
	s := cfg.Webserver.Session

	switch s.Storage {
	case config.SessionStorageMemory, "":
		return sessionmemory.New(), nil
	case config.SessionStorageMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg.DB),
			Table:         s.Table,
		}), nil
	case config.SessionStoragePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(cfg.DB),
			Table:         s.Table,
		}), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownSessionStorage, s.Storage)
	}
}
