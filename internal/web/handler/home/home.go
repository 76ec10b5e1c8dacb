// Package home renders the landing page.
package home

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/db/controller/setting"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "home/index"

	latestNews     = 3
	upcomingEvents = 3
)

// Service is the landing page handler service.
type Service struct {
	env *handler.Env
	now func() time.Time
}

// Handler is the landing page handler.
var Handler = Service{}

// Init initializes the landing page handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env
	if s.now == nil {
		s.now = time.Now
	}

	app.Get(Path, s.Get)

	return nil
}

// Get renders the landing page.
func (s *Service) Get(c *fiber.Ctx) error {
	store := s.env.Content

	events := store.UpcomingEvents(s.now())
	if len(events) > upcomingEvents {
		events = events[:upcomingEvents]
	}

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation":   navigation.NewContext("Home", "home", "home"),
		"Announcement": setting.Value(s.env.DB, handler.SettingAnnouncement, ""),
		"TotalRaised":  store.TotalRaised(),
		"Requested":    store.TotalRequested(),
		"Progress":     store.ProgressPercentage(),
		"Payams":       store.Fundraising().Payams,
		"News":         store.LatestNews(latestNews),
		"Events":       events,
	}, handler.BaseLayout)
}
