// Package logout ends the admin session.
package logout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/session"
)

// Path is the logout path.
const Path = handler.LogoutPath

// Service is the logout handler service.
type Service struct {
	env *handler.Env
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)

	return nil
}

// Logout deletes the stored identity, expires the cookie and returns to the home page.
// It is idempotent.
func (s *Service) Logout(c *fiber.Ctx) error {
	a := session.FromLocals(c)

	if id := a.Identity(); id != nil {
		handler.Audit(c, s.env, audit.Entry{Action: audit.ActionLogout, Actor: id.Email, Success: true})
	}

	a.Logout()
	s.env.Sessions.Clear(c)

	return c.Redirect(handler.RootPath)
}
