// Package dashboard renders the admin landing page.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/middleware/guard"
	"github.com/teca-org/teca-web/internal/web/navigation"
	"github.com/teca-org/teca-web/internal/web/session"
)

const (
	// Path is the path of the dashboard.
	Path = handler.AdminPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	recentEntries = 5
)

// Service is the dashboard handler service.
type Service struct {
	env *handler.Env
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler. Every signed in user may open it.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, guard.Require(env, ""), s.Get)

	return nil
}

// Get renders the dashboard.
func (s *Service) Get(c *fiber.Ctx) error {
	store := s.env.Content
	a := session.FromLocals(c)

	pending := 0

	for _, p := range store.Pledges() {
		if p.Status == content.PledgePending {
			pending++
		}
	}

	data := fiber.Map{
		"Navigation":     navigation.NewContext("Dashboard", "dashboard", "dashboard"),
		"Fundraising":    store.Fundraising(),
		"VerifiedRaised": store.TotalRaised(),
		"NewsCount":      len(store.News()),
		"EventCount":     len(store.Events()),
		"PendingPledges": pending,
		"Permissions":    a.Permissions(),
	}

	if a.HasPermission(auth.PermReadAudit) {
		entries, err := audit.List(c.UserContext(), s.env.DB, recentEntries)
		if err != nil {
			log.Error().Err(err).Msg("failed to load recent audit entries")
		}

		data["RecentAudit"] = entries
	}

	return handler.Render(c, s.env, TemplateName, data, handler.AdminLayout)
}
