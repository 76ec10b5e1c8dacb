// Package webtest builds handler environments for tests: an in-memory
// database seeded with the admin accounts, the canonical content and an
// in-memory session storage.
package webtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/config"
	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/db/controller/account"
	"github.com/teca-org/teca-web/internal/db/models"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/session"
)

// Password is the password of every seeded account.
const Password = "secret123"

// Views is a minimal fiber.Views engine. It writes the "error" field of the
// data map when present and the template name otherwise, so tests can assert
// which page or message a handler rendered.
type Views struct{}

// Load implements fiber.Views.
func (Views) Load() error { return nil }

// Render implements fiber.Views.
func (Views) Render(w io.Writer, name string, data any, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["error"].(string); exists && v != "" {
			_, err := io.WriteString(w, v)
			return err
		}
	}

	_, err := io.WriteString(w, name)

	return err
}

// Recorder is a fiber.Views engine remembering the last rendered template,
// its data and its layout. It writes the template name.
type Recorder struct {
	mu     sync.Mutex
	name   string
	data   fiber.Map
	layout string
}

// Load implements fiber.Views.
func (*Recorder) Load() error { return nil }

// Render implements fiber.Views.
func (r *Recorder) Render(w io.Writer, name string, data any, layout ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.name = name
	r.data, _ = data.(fiber.Map)
	r.layout = ""

	if len(layout) > 0 {
		r.layout = layout[0]
	}

	_, err := io.WriteString(w, name)

	return err
}

// Last returns the last rendered template, data and layout.
func (r *Recorder) Last() (name string, data fiber.Map, layout string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.name, r.data, r.layout
}

var (
	hashOnce sync.Once
	hash     string
)

// fastHash returns an argon2id hash of Password with parameters small enough for tests.
func fastHash(t *testing.T) string {
	t.Helper()

	hashOnce.Do(func() {
		h, err := argon2id.CreateHash(Password, &argon2id.Params{
			Memory:      8 * 1024,
			Iterations:  1,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		})
		if err != nil {
			panic(err)
		}

		hash = h
	})

	return hash
}

// Accounts returns the seeded admin accounts, one per role.
func Accounts(t *testing.T) []config.Account {
	t.Helper()

	h := fastHash(t)

	return []config.Account{
		{ID: "1", Name: "John Deng Majok", Email: "admin@teca.org", Role: string(auth.RoleSuperAdmin), PasswordHash: h},
		{ID: "2", Name: "Mary Nyandeng Akot", Email: "editor@teca.org", Role: string(auth.RoleEditor), PasswordHash: h},
		{ID: "3", Name: "Peter Malual Deng", Email: "finance@teca.org", Role: string(auth.RoleFinance), PasswordHash: h},
		{ID: "4", Name: "Committee Member", Email: "committee@teca.org", Role: string(auth.RoleCommittee), PasswordHash: h},
	}
}

// NewDB opens a migrated in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	// every connection of an in-memory database is a new database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Account{}, &models.AuditEntry{}, &models.Setting{}))
	require.NoError(t, account.Seed(db, Accounts(t)))

	return db
}

// NewConfig returns a valid configuration without login latency.
func NewConfig() *config.Config {
	return &config.Config{
		DevMode: true,
		Title:   "Twic East Community Association",
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 3000,
			Session: config.Session{
				CookieName: "session",
				ExpiryTime: time.Hour,
				Storage:    config.SessionStorageMemory,
			},
		},
		Auth: config.Auth{LoginLatency: -1},
	}
}

// NewEnv builds a complete handler environment.
func NewEnv(t *testing.T) *handler.Env {
	t.Helper()

	cfg := NewConfig()
	db := NewDB(t)

	storage := memory.New()
	t.Cleanup(func() { _ = storage.Close() })

	credentials, err := account.NewStore(db)
	require.NoError(t, err)

	sessions, err := session.New(storage, cfg, credentials)
	require.NoError(t, err)

	return &handler.Env{
		Cfg:      cfg,
		DB:       db,
		Content:  content.NewCanonicalStore(),
		Sessions: sessions,
	}
}

// NewApp creates a fiber app using Views and the session middleware of env.
func NewApp(env *handler.Env) *fiber.App {
	return NewAppWithViews(env, Views{})
}

// NewAppWithViews is NewApp with another views engine, usually a *Recorder.
func NewAppWithViews(env *handler.Env, views fiber.Views) *fiber.App {
	app := fiber.New(fiber.Config{Views: views})
	app.Use(env.Sessions.Middleware())

	return app
}

// SignIn stores the identity of the seeded account with role and returns
// the session cookie value.
func SignIn(t *testing.T, env *handler.Env, role auth.Role) string {
	t.Helper()

	var identity *auth.Identity

	for _, a := range Accounts(t) {
		if a.Role == string(role) {
			identity = &auth.Identity{ID: a.ID, Name: a.Name, Email: a.Email, Role: role}
		}
	}

	require.NotNil(t, identity, "no account with role %s", role)

	id, err := session.GenerateSessionID()
	require.NoError(t, err)

	raw, err := auth.MarshalIdentity(identity)
	require.NoError(t, err)
	require.NoError(t, env.Sessions.Storage().Set(auth.StorageKey(id), raw, 0))

	return id
}

// Do sends req with the session cookie (if any) and returns the response and body.
func Do(t *testing.T, app *fiber.App, req *http.Request, cookie string) (*http.Response, string) {
	t.Helper()

	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

// Get is Do for a GET request to target.
func Get(t *testing.T, app *fiber.App, target, cookie string) (*http.Response, string) {
	t.Helper()

	return Do(t, app, httptest.NewRequest(http.MethodGet, target, nil), cookie)
}
