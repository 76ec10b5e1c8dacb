// Package events renders the events list and the event pages.
package events

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the events list.
	Path = handler.RootPath + "events"

	// TemplateList is the template of the events list.
	TemplateList = "events/list"
	// TemplateDetail is the template of a single event.
	TemplateDetail = "events/detail"
)

// Service is the events handler service.
type Service struct {
	env *handler.Env
	now func() time.Time
}

// Handler is the events handler.
var Handler = Service{}

// Init initializes the events handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env
	if s.now == nil {
		s.now = time.Now
	}

	app.Get(Path, s.List)
	app.Get(Path+"/:slug", s.Detail)

	return nil
}

// List renders the upcoming and past events.
func (s *Service) List(c *fiber.Ctx) error {
	now := s.now()

	nav := navigation.NewContext("Events", "events", "list").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Events", Path, true)

	return handler.Render(c, s.env, TemplateList, fiber.Map{
		"Navigation": nav,
		"Upcoming":   s.env.Content.UpcomingEvents(now),
		"Past":       s.env.Content.PastEvents(now),
	}, handler.BaseLayout)
}

// Detail renders one event.
func (s *Service) Detail(c *fiber.Ctx) error {
	event, err := s.env.Content.EventBySlug(c.Params("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return handler.NotFound(c, s.env)
	}

	if err != nil {
		return err
	}

	nav := navigation.NewContext(event.Title, "events", "detail").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Events", Path, false).
		AddBreadcrumb(event.Title, Path+"/"+event.Slug, true)

	return handler.Render(c, s.env, TemplateDetail, fiber.Map{
		"Navigation": nav,
		"Event":      event,
		"Upcoming":   !event.StartDate.Before(s.now()),
	}, handler.BaseLayout)
}
