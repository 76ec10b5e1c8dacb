// Package leadership renders the leadership page.
package leadership

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the leadership page.
	Path = handler.RootPath + "leadership"

	// TemplateName is the name of the leadership template.
	TemplateName = "leadership/index"
)

// Service is the leadership handler service.
type Service struct {
	env *handler.Env
}

// Handler is the leadership handler.
var Handler = Service{}

// Init initializes the leadership handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, s.Get)

	return nil
}

// Get renders the association officers and the resettlement coordinators.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Leadership", "leadership", "leadership").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Leadership", Path, true)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation":   nav,
		"Association":  s.env.Content.AssociationLeadership(),
		"Resettlement": s.env.Content.ResettlementLeadership(),
	}, handler.BaseLayout)
}
