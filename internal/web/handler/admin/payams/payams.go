// Package payams lets finance staff update the fundraising figures of the payams.
package payams

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/middleware/guard"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the fundraising admin page.
	Path = handler.AdminPath + "/payams"

	// TemplateName is the name of the fundraising admin template.
	TemplateName = "admin/payams"
)

// Form holds the new figures of one payam.
type Form struct {
	RaisedAmount    int64  `form:"raised_amount" validate:"gte=0"`
	RequestedAmount int64  `form:"requested_amount" validate:"gt=0"`
	Description     string `form:"description" validate:"max=1000"`
}

// Service is the fundraising admin handler service.
type Service struct {
	env       *handler.Env
	validator *validator.Validate
}

// Handler is the fundraising admin handler.
var Handler = Service{}

// Init initializes the fundraising admin handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env
	s.validator = validator.New()

	app.Get(Path, guard.Require(env, auth.PermWriteDonations), s.List)
	app.Post(Path+"/:id", guard.Require(env, auth.PermWriteDonations), s.Update)

	return nil
}

// List renders the fundraising overview.
func (s *Service) List(c *fiber.Ctx) error {
	return s.render(c, fiber.Map{"Updated": c.Query("updated")})
}

// Update replaces the figures of the payam with the id in the path.
func (s *Service) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := s.env.Content.PayamByID(id); errors.Is(err, content.ErrNotFound) {
		return handler.NotFound(c, s.env)
	}

	var form Form

	if err := c.BodyParser(&form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return s.render(c, fiber.Map{"Error": "Invalid form data"})
	}

	if err := s.validator.Struct(form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return s.render(c, fiber.Map{"Error": "Amounts must be positive whole dollars", "FailedID": id})
	}

	p, err := s.env.Content.UpdatePayamFunding(id, form.RaisedAmount, form.RequestedAmount, form.Description)
	if err != nil {
		log.Error().Err(err).Str("payam_id", id).Msg("failed to update payam funding")
		c.Status(fiber.StatusInternalServerError)

		return s.render(c, fiber.Map{"Error": "Failed to update the payam", "FailedID": id})
	}

	handler.Audit(c, s.env, audit.Entry{
		Action:  audit.ActionPayamUpdate,
		Detail:  fmt.Sprintf("%s raised=%d requested=%d", p.Slug, p.RaisedAmount, p.RequestedAmount),
		Success: true,
	})

	return c.Redirect(Path + "?updated=" + p.ID)
}

func (s *Service) render(c *fiber.Ctx, data fiber.Map) error {
	data["Navigation"] = navigation.NewContext("Fundraising", "payams", "list").
		AddBreadcrumb("Dashboard", handler.AdminPath, false).
		AddBreadcrumb("Fundraising", Path, true)
	data["Summary"] = s.env.Content.Fundraising()

	return handler.Render(c, s.env, TemplateName, data, handler.AdminLayout)
}
