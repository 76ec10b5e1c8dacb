// Package fundraising renders the public fundraising ledger.
package fundraising

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the fundraising page.
	Path = handler.RootPath + "fundraising"
	// LedgerPath is the old address of the donation ledger.
	LedgerPath = handler.RootPath + "ledger"

	// TemplateName is the template of the fundraising page.
	TemplateName = "fundraising/index"
)

// DonationRow is a public donation with the name of its payam.
type DonationRow struct {
	content.Donation
	Payam string
}

// PledgeRow is a pledge with the name of its payam.
type PledgeRow struct {
	content.Pledge
	Payam string
}

// Service is the fundraising handler service.
type Service struct {
	env *handler.Env
}

// Handler is the fundraising handler.
var Handler = Service{}

// Init initializes the fundraising handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, s.Get)
	app.Get(LedgerPath, func(c *fiber.Ctx) error {
		return c.Redirect(Path+"#ledger", fiber.StatusMovedPermanently)
	})

	return nil
}

// Get renders the fundraising progress, the donors who agreed to be listed
// and the pledges.
func (s *Service) Get(c *fiber.Ctx) error {
	store := s.env.Content

	names := make(map[string]string)
	for _, p := range store.Payams() {
		names[p.ID] = p.Name
	}

	public := store.PublicDonations()
	donations := make([]DonationRow, 0, len(public))

	for _, d := range public {
		donations = append(donations, DonationRow{Donation: d, Payam: names[d.PayamID]})
	}

	var pending, fulfilled int64

	pledges := make([]PledgeRow, 0)

	for _, p := range store.Pledges() {
		switch p.Status {
		case content.PledgePending:
			pending += p.Amount
		case content.PledgeFulfilled:
			fulfilled += p.Amount
		case content.PledgeCancelled:
			continue
		}

		pledges = append(pledges, PledgeRow{Pledge: p, Payam: names[p.PayamID]})
	}

	nav := navigation.NewContext("Fundraising", "fundraising", "index").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Fundraising", Path, true)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation": nav,
		"Summary":    store.Fundraising(),
		"Verified":   store.TotalRaised(),
		"Donations":  donations,
		"Pledges":    pledges,
		"Pending":    pending,
		"Fulfilled":  fulfilled,
	}, handler.BaseLayout)
}
