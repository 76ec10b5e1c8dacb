package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/config"
)

func newTestConfig() *config.Config {
	return &config.Config{
		DevMode: true,
		Webserver: config.Webserver{
			Session: config.Session{CookieName: "session", ExpiryTime: time.Hour},
		},
		Auth: config.Auth{LoginLatency: -1},
	}
}

func newTestManager(t *testing.T) (*Manager, *memory.Storage) {
	t.Helper()

	storage := memory.New()
	t.Cleanup(func() { _ = storage.Close() })

	m, err := New(storage, newTestConfig(), nil)
	require.NoError(t, err)

	return m, storage
}

// whoami answers with the identity email and the session state.
func newTestApp(m *Manager) *fiber.App {
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		s := FromLocals(c).Snapshot()

		email := "-"
		if s.Identity != nil {
			email = s.Identity.Email
		}

		user, _ := c.Locals(UserIDLocal).(string)

		return c.SendString(email + "|" + s.State.String() + "|" + user)
	})
	app.Get("/issue", func(c *fiber.Ctx) error {
		id, err := GenerateSessionID()
		if err != nil {
			return err
		}

		m.Discard(m.ID(c))
		m.Issue(c, id)

		return c.SendString(id)
	})

	return app
}

func get(t *testing.T, app *fiber.App, path, cookie string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestNewNilStorage(t *testing.T) {
	_, err := New(nil, newTestConfig(), nil)
	require.ErrorIs(t, err, ErrNilStorage)
}

func TestMiddleware(t *testing.T) {
	m, storage := newTestManager(t)
	app := newTestApp(m)

	id, err := GenerateSessionID()
	require.NoError(t, err)

	editor := &auth.Identity{ID: "2", Name: "Mary Nyandeng Akot", Email: "editor@teca.org", Role: auth.RoleEditor}
	raw, err := auth.MarshalIdentity(editor)
	require.NoError(t, err)
	require.NoError(t, storage.Set(auth.StorageKey(id), raw, 0))

	corruptID, err := GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, storage.Set(auth.StorageKey(corruptID), []byte("{not json"), 0))

	emptyID, err := GenerateSessionID()
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{"no cookie", "", "-|anonymous|"},
		{"malformed cookie", "../../etc/passwd", "-|anonymous|"},
		{"unknown session", emptyID, "-|anonymous|"},
		{"stored identity", id, "editor@teca.org|authenticated|2"},
		{"corrupt identity", corruptID, "-|anonymous|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, app, "/whoami", tt.cookie)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, body)
			assert.Empty(t, resp.Header.Get(fiber.HeaderSetCookie))
		})
	}

	v, err := storage.Get(auth.StorageKey(corruptID))
	require.NoError(t, err)
	assert.Nil(t, v, "corrupt entry must be deleted")
}

func TestIssue(t *testing.T) {
	m, storage := newTestManager(t)
	app := newTestApp(m)

	resp, id := get(t, app, "/issue", "")
	assert.Len(t, id, 64)
	assert.Contains(t, resp.Header.Get(fiber.HeaderSetCookie), "session="+id)
	assert.Contains(t, strings.ToLower(resp.Header.Get(fiber.HeaderSetCookie)), "httponly")

	raw, err := auth.MarshalIdentity(&auth.Identity{ID: "1", Email: "admin@teca.org", Role: auth.RoleSuperAdmin})
	require.NoError(t, err)
	require.NoError(t, storage.Set(auth.StorageKey(id), raw, 0))

	resp, next := get(t, app, "/issue", id)
	assert.NotEqual(t, id, next)
	assert.Contains(t, resp.Header.Get(fiber.HeaderSetCookie), "session="+next)

	v, err := storage.Get(auth.StorageKey(id))
	require.NoError(t, err)
	assert.Nil(t, v, "previous session must be discarded")
}

func TestDiscardEmpty(t *testing.T) {
	m, _ := newTestManager(t)
	assert.NotPanics(t, func() { m.Discard("") })
}

func TestClear(t *testing.T) {
	m, _ := newTestManager(t)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		m.Clear(c)
		return nil
	})

	resp, _ := get(t, app, "/", "")
	cookie := resp.Header.Get(fiber.HeaderSetCookie)
	assert.Contains(t, cookie, "session=;")
	assert.Contains(t, cookie, "expires=Thu, 01 Jan 1970")
}

func TestFromLocalsWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		s := FromLocals(c).Snapshot()
		return c.SendString(s.State.String())
	})

	_, body := get(t, app, "/", "")
	assert.Equal(t, "anonymous", body)
}

func TestValidID(t *testing.T) {
	id, err := GenerateSessionID()
	require.NoError(t, err)

	assert.True(t, validID(id))
	assert.False(t, validID(""))
	assert.False(t, validID(id[:63]))
	assert.False(t, validID(strings.Repeat("z", 64)))
}
