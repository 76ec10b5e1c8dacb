// Package settings provides the site settings page of the admin area.
package settings

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/db/controller/setting"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/middleware/guard"
	"github.com/teca-org/teca-web/internal/web/navigation"
	"github.com/teca-org/teca-web/internal/web/session"
)

const (
	// Path is the path to the site settings page.
	Path = handler.AdminPath + "/settings"

	// TemplateName is the name of the site settings template.
	TemplateName = "admin/settings"

	// DefaultContactEmail is shown until a contact address is saved.
	DefaultContactEmail = handler.DefaultContactEmail
)

// Form holds the editable site settings.
type Form struct {
	Announcement string `form:"announcement" validate:"max=500"`
	ContactEmail string `form:"contact_email" validate:"required,email"`
}

// Service is the site settings handler service.
type Service struct {
	env       *handler.Env
	validator *validator.Validate
}

// Handler is the site settings handler.
var Handler = Service{}

// Init initializes the site settings handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env
	s.validator = validator.New()

	app.Get(Path, guard.Require(env, auth.PermAdminSettings), s.Get)
	app.Post(Path, guard.Require(env, auth.PermAdminSettings), s.Post)

	return nil
}

// Get renders the settings form with the stored values.
func (s *Service) Get(c *fiber.Ctx) error {
	stored, err := setting.GetAll(s.env.DB)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")
	}

	form := Form{
		Announcement: stored[handler.SettingAnnouncement],
		ContactEmail: stored[handler.SettingContactEmail],
	}
	if form.ContactEmail == "" {
		form.ContactEmail = DefaultContactEmail
	}

	return s.render(c, form, fiber.Map{"Saved": c.Query("saved") == "1"})
}

// Post validates and stores the submitted settings.
func (s *Service) Post(c *fiber.Ctx) error {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return s.render(c, form, fiber.Map{"Error": "Invalid form data"})
	}

	if err := s.validator.Struct(form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return s.render(c, form, fiber.Map{"Error": "Please enter a valid contact email; the announcement is limited to 500 characters"})
	}

	actor := ""
	if id := session.FromLocals(c).Identity(); id != nil {
		actor = id.ID
	}

	values := map[string]string{
		handler.SettingAnnouncement: form.Announcement,
		handler.SettingContactEmail: form.ContactEmail,
	}

	for name, value := range values {
		if err := save(s.env, name, value, actor); err != nil {
			log.Error().Err(err).Str("setting", name).Msg("failed to save setting")
			handler.Audit(c, s.env, audit.Entry{Action: audit.ActionSettingUpdate, Detail: name})
			c.Status(fiber.StatusInternalServerError)

			return s.render(c, form, fiber.Map{"Error": "Failed to save settings"})
		}

		handler.Audit(c, s.env, audit.Entry{Action: audit.ActionSettingUpdate, Detail: name, Success: true})
	}

	return c.Redirect(Path + "?saved=1")
}

// save stores value under name. An empty value removes the setting.
func save(env *handler.Env, name, value, actor string) error {
	if strings.TrimSpace(value) == "" {
		if err := setting.DeleteByName(env.DB, name); err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
			return err
		}

		return nil
	}

	_, err := setting.Set(env.DB, name, value, actor)

	return err
}

func (s *Service) render(c *fiber.Ctx, form Form, data fiber.Map) error {
	data["Navigation"] = navigation.NewContext("Settings", "settings", "site").
		AddBreadcrumb("Dashboard", handler.AdminPath, false).
		AddBreadcrumb("Settings", Path, true)
	data["Form"] = form

	return handler.Render(c, s.env, TemplateName, data, handler.AdminLayout)
}
