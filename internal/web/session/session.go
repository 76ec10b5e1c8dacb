// Package session binds the per-browser session cookie to an auth.Authority.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/config"
)

const (
	// AuthorityLocal is the fiber.Locals key holding the request's *auth.Authority.
	AuthorityLocal = "authority"
	// UserIDLocal is the fiber.Locals key holding the id of the signed in user.
	UserIDLocal = "user_id"

	idBytes = 32
)

// ErrNilStorage is returned by New when no storage backend is given.
var ErrNilStorage = errors.New("session storage is nil")

// Manager issues session cookies and builds the Authority of a request.
type Manager struct {
	storage     fiber.Storage
	credentials auth.CredentialStore
	permissions auth.PermissionTable

	cookieName string
	expiry     time.Duration
	latency    time.Duration
	secure     bool
}

// New creates a Manager storing identities in storage.
func New(storage fiber.Storage, cfg *config.Config, credentials auth.CredentialStore) (*Manager, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}

	return &Manager{
		storage:     storage,
		credentials: credentials,
		permissions: auth.DefaultPermissionTable(),
		cookieName:  cfg.Webserver.Session.CookieName,
		expiry:      cfg.Webserver.Session.ExpiryTime,
		latency:     cfg.Auth.LoginLatency,
		secure:      !cfg.DevMode,
	}, nil
}

// Storage returns the backend holding the serialized identities.
func (m *Manager) Storage() fiber.Storage {
	return m.storage
}

// Permissions returns the role table used by every Authority of the manager.
func (m *Manager) Permissions() auth.PermissionTable {
	return m.permissions
}

// ID returns the session id of the request or "" when the cookie is missing
// or malformed.
func (m *Manager) ID(c *fiber.Ctx) string {
	id := c.Cookies(m.cookieName)
	if !validID(id) {
		return ""
	}

	return id
}

// Issue sets the session cookie of the response to id.
func (m *Manager) Issue(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.expiry.Seconds()),
		Secure:   m.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Discard deletes the identity stored for session id.
func (m *Manager) Discard(id string) {
	if id == "" {
		return
	}

	if err := m.storage.Delete(auth.StorageKey(id)); err != nil {
		log.Error().Err(err).Msg("failed to discard session")
	}
}

// Clear expires the session cookie.
func (m *Manager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Authority builds an unrestored Authority for session id.
func (m *Manager) Authority(id string) *auth.Authority {
	return auth.NewAuthority(auth.Config{
		Credentials: m.credentials,
		Storage:     m.storage,
		Key:         auth.StorageKey(id),
		Expiry:      m.expiry,
		Permissions: m.permissions,
		Latency:     m.latency,
	})
}

// Middleware restores the Authority of every request and stores it in the
// request locals. Requests without a session cookie get an anonymous
// Authority and no cookie.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var a *auth.Authority

		if id := m.ID(c); id != "" {
			a = m.Authority(id)
			a.Restore()
		} else {
			a = anonymous(m.permissions)
		}

		c.Locals(AuthorityLocal, a)

		if id := a.Identity(); id != nil {
			c.Locals(UserIDLocal, id.ID)
		}

		return c.Next()
	}
}

// FromLocals returns the Authority stored by Middleware. Without one an
// anonymous Authority without storage is returned.
func FromLocals(c *fiber.Ctx) *auth.Authority {
	if a, ok := c.Locals(AuthorityLocal).(*auth.Authority); ok && a != nil {
		return a
	}

	log.Warn().Str("path", c.Path()).Msg("no authority in request locals")

	return anonymous(nil)
}

// anonymous returns a settled Authority without storage.
func anonymous(permissions auth.PermissionTable) *auth.Authority {
	a := auth.NewAuthority(auth.Config{Permissions: permissions})
	a.Logout()

	return a
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

func validID(id string) bool {
	if len(id) != 2*idBytes {
		return false
	}

	_, err := hex.DecodeString(id)

	return err == nil
}
