// Package activities renders the project activities page.
package activities

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the activities page.
	Path = handler.RootPath + "activities"

	// TemplateName is the name of the activities template.
	TemplateName = "activities/index"
)

// Row is an activity with the name of its payam.
type Row struct {
	content.Activity
	Payam content.Payam
}

// Service is the activities handler service.
type Service struct {
	env *handler.Env
}

// Handler is the activities handler.
var Handler = Service{}

// Init initializes the activities handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, s.Get)

	return nil
}

// Get renders the activities, filtered by the status query parameter when it
// names a known status.
func (s *Service) Get(c *fiber.Ctx) error {
	store := s.env.Content
	status := content.ActivityStatus(c.Query("status"))

	var list []content.Activity

	switch status {
	case content.ActivityPlanned, content.ActivityOngoing, content.ActivityCompleted:
		list = store.ActivitiesByStatus(status)
	default:
		status = ""
		list = store.Activities()
	}

	rows := make([]Row, 0, len(list))

	for _, a := range list {
		p, _ := store.PayamByID(a.PayamID) //nolint:errcheck // activities without a payam show none
		rows = append(rows, Row{Activity: a, Payam: p})
	}

	nav := navigation.NewContext("Activities", "activities", "activities").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Activities", Path, true)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation": nav,
		"Activities": rows,
		"Status":     string(status),
	}, handler.BaseLayout)
}
