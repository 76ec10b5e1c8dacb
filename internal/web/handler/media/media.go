// Package media renders the media library.
package media

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the media library.
	Path = handler.RootPath + "media"

	// TemplateName is the name of the media template.
	TemplateName = "media/index"
)

// Service is the media handler service.
type Service struct {
	env *handler.Env
}

// Handler is the media handler.
var Handler = Service{}

// Init initializes the media handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, s.Get)

	return nil
}

// Get renders the media library, filtered by the type query parameter.
func (s *Service) Get(c *fiber.Ctx) error {
	items := s.env.Content.Media()

	t, ok := content.ParseMediaType(c.Query("type"))
	if ok {
		items = s.env.Content.MediaByType(t)
	}

	nav := navigation.NewContext("Media", "media", "media").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Media", Path, true)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation": nav,
		"Media":      items,
		"Type":       string(t),
		"Types":      []content.MediaType{content.MediaImage, content.MediaVideo, content.MediaDocument},
	}, handler.BaseLayout)
}
