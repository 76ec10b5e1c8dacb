package config

import (
	"time"

	"github.com/teca-org/teca-web/internal/logger"
)

// Session storage engines.
const (
	SessionStorageMemory   = "memory"
	SessionStorageMySQL    = "mysql"
	SessionStoragePostgres = "postgres"
)

// Session configures the per-browser session cookie and its storage.
type Session struct {
	CookieName string        // name of the session cookie
	ExpiryTime time.Duration // cookie and storage entry lifetime
	Storage    string        // memory, mysql or postgres
	Table      string        // table used by the sql storages
}

// Auth configures the admin login.
type Auth struct {
	LoginLatency time.Duration // simulated login round trip, negative disables it
}

// Account seeds one entry of the credential table.
type Account struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash string // argon2id hash, see the hash-password command
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Auth      Auth
	Accounts  []Account
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	CleanPath      bool    // redirect paths with repeated slashes to their clean form
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // seconds /checkalive fails before the server stops
	URL            string  // base url for the webserver
	Session        Session // session settings
}
