// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/teca-org/teca-web/internal/config"
)

// MySQL builds a go-sql-driver Data Source Name from the configuration.
func MySQL(db config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}

// Postgres builds a postgres connection URL from the configuration.
func Postgres(db config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: db.Extras,
	}

	return u.String()
}

// SQLite returns the database file, falling back to a shared in-memory database.
func SQLite(db config.DB) string {
	if db.Name == "" {
		return "file::memory:?cache=shared"
	}

	if db.Extras != "" {
		return db.Name + "?" + db.Extras
	}

	return db.Name
}

// Dialector opens the gorm driver matching the configured engine.
func Dialector(db config.DB) (gorm.Dialector, error) {
	switch db.GormEngine {
	case config.GormEngineMySQL:
		return mysql.Open(MySQL(db)), nil
	case config.GormEnginePostgres:
		return postgres.Open(Postgres(db)), nil
	case config.GormEngineSQLite, "":
		return sqlite.Open(SQLite(db)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownGormEngine, db.GormEngine)
	}
}
