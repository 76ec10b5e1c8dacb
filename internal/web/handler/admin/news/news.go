// Package news lets editors publish news items.
package news

import (
	"errors"
	"net/url"
	"strings"

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
	// Path is the path of the news admin page.
	Path = handler.AdminPath + "/news"

	// TemplateName is the name of the news admin template.
	TemplateName = "admin/news"
)

// Form is the submitted news item. Tags are comma separated.
type Form struct {
	Title      string `form:"title" validate:"required,max=200"`
	Excerpt    string `form:"excerpt" validate:"max=500"`
	Body       string `form:"body" validate:"max=20000"`
	CoverImage string `form:"cover_image" validate:"omitempty,max=300"`
	Tags       string `form:"tags" validate:"max=300"`
}

// Service is the news admin handler service.
type Service struct {
	env       *handler.Env
	validator *validator.Validate
}

// Handler is the news admin handler.
var Handler = Service{}

// Init initializes the news admin handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env
	s.validator = validator.New()

	app.Get(Path, guard.Require(env, auth.PermWriteNews), s.List)
	app.Post(Path, guard.Require(env, auth.PermWriteNews), s.Create)

	return nil
}

// List renders the published news items, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	return s.render(c, fiber.Map{"Created": c.Query("created")})
}

// Create publishes a news item and returns to the list.
func (s *Service) Create(c *fiber.Ctx) error {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return s.render(c, fiber.Map{"Error": "Invalid form data"})
	}

	if err := s.validator.Struct(form); err != nil {
		c.Status(fiber.StatusBadRequest)
		return s.render(c, fiber.Map{"Error": "Please correct the highlighted errors", "Form": form})
	}

	a, err := s.env.Content.AddNews(content.NewArticle{
		Title:      form.Title,
		Excerpt:    form.Excerpt,
		Body:       form.Body,
		CoverImage: strings.TrimSpace(form.CoverImage),
		Tags:       strings.Split(form.Tags, ","),
	})

	switch {
	case errors.Is(err, content.ErrEmptyTitle), errors.Is(err, content.ErrEmptySlug):
		c.Status(fiber.StatusBadRequest)
		return s.render(c, fiber.Map{"Error": "The title must contain letters or digits", "Form": form})
	case err != nil:
		log.Error().Err(err).Msg("failed to add news item")
		c.Status(fiber.StatusInternalServerError)

		return s.render(c, fiber.Map{"Error": "Failed to publish the news item", "Form": form})
	}

	log.Info().Str("slug", a.Slug).Msg("news item published")
	handler.Audit(c, s.env, audit.Entry{Action: audit.ActionNewsCreate, Detail: a.Slug, Success: true})

	return c.Redirect(Path + "?created=" + url.QueryEscape(a.Slug))
}

func (s *Service) render(c *fiber.Ctx, data fiber.Map) error {
	data["Navigation"] = navigation.NewContext("News", "news", "list").
		AddBreadcrumb("Dashboard", handler.AdminPath, false).
		AddBreadcrumb("News", Path, true)
	data["News"] = s.env.Content.LatestNews(-1)

	return handler.Render(c, s.env, TemplateName, data, handler.AdminLayout)
}
