// Package pledges lists the promised contributions.
package pledges

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/handler/admin/pager"
	"github.com/teca-org/teca-web/internal/web/middleware/guard"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the pledges page.
	Path = handler.AdminPath + "/pledges"

	// TemplateName is the name of the pledges template.
	TemplateName = "admin/pledges"
)

// Row is a pledge with its payam.
type Row struct {
	content.Pledge
	Payam content.Payam
}

// Service is the pledges handler service.
type Service struct {
	env *handler.Env
}

// Handler is the pledges handler.
var Handler = Service{}

// Init initializes the pledges handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, guard.Require(env, auth.PermWritePledges), s.List)

	return nil
}

// List renders one page of pledges, optionally restricted to one status,
// and the pledged amount per status.
func (s *Service) List(c *fiber.Ctx) error {
	store := s.env.Content
	status := content.PledgeStatus(c.Query("status"))

	switch status {
	case content.PledgePending, content.PledgeFulfilled, content.PledgeCancelled:
	default:
		status = ""
	}

	totals := map[content.PledgeStatus]int64{}

	var rows []Row

	for _, p := range store.Pledges() {
		totals[p.Status] += p.Amount

		if status != "" && p.Status != status {
			continue
		}

		payam, _ := store.PayamByID(p.PayamID) //nolint:errcheck // pledges may have no payam
		rows = append(rows, Row{Pledge: p, Payam: payam})
	}

	page, pageSize := pager.Params(c)
	items, pageData := pager.Slice(rows, page, pageSize)

	nav := navigation.NewContext("Pledges", "pledges", "list").
		AddBreadcrumb("Dashboard", handler.AdminPath, false).
		AddBreadcrumb("Pledges", Path, true)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation": nav,
		"Pledges":    items,
		"Page":       pageData,
		"Status":     string(status),
		"Totals":     totals,
		"Statuses":   []content.PledgeStatus{content.PledgePending, content.PledgeFulfilled, content.PledgeCancelled},
	}, handler.AdminLayout)
}
