// Package login serves the admin sign in form.
package login

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
	"github.com/teca-org/teca-web/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = handler.LoginPath

	// TemplateName is the login page template.
	TemplateName = "login"
)

// Form is the submitted login form.
type Form struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
	From     string `form:"from"`
}

// Service is the login handler service.
type Service struct {
	env       *handler.Env
	validator *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get("/", s.Get)
		router.Post("/", s.Post)
	})

	return nil
}

// Get renders the login form. Signed in users are sent on to the return path.
func (s *Service) Get(c *fiber.Ctx) error {
	from := c.Query(auth.ReturnPathParam)

	if session.FromLocals(c).Snapshot().Authenticated() {
		return c.Redirect(auth.SafeReturnPath(from))
	}

	return s.render(c, fiber.StatusOK, from, "", "")
}

// Post checks the submitted credentials, signs the browser session in and
// redirects to the return path.
func (s *Service) Post(c *fiber.Ctx) error {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		log.Debug().Err(err).Msg(ErrInvalidFormData.Error())
		return s.render(c, fiber.StatusBadRequest, "", "", MsgInvalidForm)
	}

	if err := s.validator.Struct(form); err != nil {
		log.Debug().Err(err).Msg(ErrInvalidFormData.Error())
		return s.render(c, fiber.StatusBadRequest, form.From, form.Email, MsgInvalidForm)
	}

	// a sign in always gets a fresh session id, the one sent by the browser
	// is never promoted
	id, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session id")
		return s.render(c, fiber.StatusInternalServerError, form.From, form.Email, MsgInternalError)
	}

	a := s.env.Sessions.Authority(id)

	ok, err := a.Login(c.UserContext(), form.Email, form.Password)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("login failed")
		}

		return s.render(c, fiber.StatusInternalServerError, form.From, form.Email, MsgInternalError)
	}

	if !ok {
		log.Info().Err(ErrInvalidCredentials).Str("ip", c.IP()).Msg("login rejected")
		handler.Audit(c, s.env, audit.Entry{Action: audit.ActionLogin, Actor: form.Email})

		return s.render(c, fiber.StatusUnauthorized, form.From, form.Email, MsgInvalidCredentials)
	}

	s.env.Sessions.Discard(s.env.Sessions.ID(c))
	s.env.Sessions.Issue(c, id)

	c.Locals(session.AuthorityLocal, a)
	handler.Audit(c, s.env, audit.Entry{Action: audit.ActionLogin, Actor: form.Email, Success: true})

	return c.Redirect(auth.SafeReturnPath(form.From))
}

func (s *Service) render(c *fiber.Ctx, status int, from, email, msg string) error {
	c.Status(status)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation": navigation.NewContext("Sign in", "login", "login"),
		"From":       from,
		"Email":      email,
		"error":      msg,
	}, handler.BaseLayout)
}
