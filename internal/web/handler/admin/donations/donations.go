// Package donations lists the recorded donations for finance staff.
package donations

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
	// Path is the path of the donations page.
	Path = handler.AdminPath + "/donations"

	// TemplateName is the name of the donations template.
	TemplateName = "admin/donations"
)

// Filter values of the verified query parameter.
const (
	FilterVerified   = "verified"
	FilterUnverified = "unverified"
)

// Row is a donation with its payam.
type Row struct {
	content.Donation
	Payam content.Payam
}

// Service is the donations handler service.
type Service struct {
	env *handler.Env
}

// Handler is the donations handler.
var Handler = Service{}

// Init initializes the donations handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, guard.Require(env, auth.PermWriteDonations), s.List)

	return nil
}

// List renders one page of donations with the verified and unverified totals.
func (s *Service) List(c *fiber.Ctx) error {
	store := s.env.Content
	filter := c.Query("verified")

	var (
		rows                 []Row
		verified, unverified int64
	)

	for _, d := range store.Donations() {
		if d.Verified {
			verified += d.Amount
		} else {
			unverified += d.Amount
		}

		if (filter == FilterVerified && !d.Verified) || (filter == FilterUnverified && d.Verified) {
			continue
		}

		p, _ := store.PayamByID(d.PayamID) //nolint:errcheck // general donations have no payam
		rows = append(rows, Row{Donation: d, Payam: p})
	}

	page, pageSize := pager.Params(c)
	items, pageData := pager.Slice(rows, page, pageSize)

	nav := navigation.NewContext("Donations", "donations", "list").
		AddBreadcrumb("Dashboard", handler.AdminPath, false).
		AddBreadcrumb("Donations", Path, true)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation": nav,
		"Donations":  items,
		"Page":       pageData,
		"Filter":     filter,
		"Verified":   verified,
		"Unverified": unverified,
	}, handler.AdminLayout)
}
