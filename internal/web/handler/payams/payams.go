// Package payams renders the resettlement overview and the payam pages.
package payams

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the payam overview.
	Path = handler.RootPath + "resettlement/payams"

	// TemplateList is the template of the payam overview.
	TemplateList = "payams/list"
	// TemplateDetail is the template of a single payam.
	TemplateDetail = "payams/detail"
)

// Card is one payam of the overview.
type Card struct {
	content.PayamFunding
	Completed int
	Ongoing   int
}

// Service is the payam handler service.
type Service struct {
	env *handler.Env
}

// Handler is the payam handler.
var Handler = Service{}

// Init initializes the payam handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, s.List)
	app.Get(Path+"/:slug", s.Detail)

	return nil
}

// List renders every payam with its fundraising progress and activity counts.
func (s *Service) List(c *fiber.Ctx) error {
	store := s.env.Content
	summary := store.Fundraising()

	cards := make([]Card, 0, len(summary.Payams))

	for _, f := range summary.Payams {
		card := Card{PayamFunding: f}

		for _, a := range store.PayamActivities(f.Payam.ID) {
			switch a.Status {
			case content.ActivityCompleted:
				card.Completed++
			case content.ActivityOngoing:
				card.Ongoing++
			case content.ActivityPlanned:
			}
		}

		cards = append(cards, card)
	}

	nav := navigation.NewContext("Payams", "payams", "list").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Payams", Path, true)

	return handler.Render(c, s.env, TemplateList, fiber.Map{
		"Navigation": nav,
		"Payams":     cards,
		"Summary":    summary,
		"Completed":  len(store.ActivitiesByStatus(content.ActivityCompleted)),
		"Ongoing":    len(store.ActivitiesByStatus(content.ActivityOngoing)),
		"Planned":    len(store.ActivitiesByStatus(content.ActivityPlanned)),
	}, handler.BaseLayout)
}

// Detail renders one payam.
func (s *Service) Detail(c *fiber.Ctx) error {
	store := s.env.Content

	p, err := store.PayamBySlug(c.Params("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return handler.NotFound(c, s.env)
	}

	if err != nil {
		return err
	}

	others := make([]content.Payam, 0)

	for _, o := range store.Payams() {
		if o.ID != p.ID {
			others = append(others, o)
		}
	}

	nav := navigation.NewContext(p.Name, "payams", "detail").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Payams", Path, false).
		AddBreadcrumb(p.Name, Path+"/"+p.Slug, true)

	return handler.Render(c, s.env, TemplateDetail, fiber.Map{
		"Navigation":       nav,
		"Payam":            p,
		"Progress":         content.Percent(p.RaisedAmount, p.RequestedAmount),
		"VerifiedProgress": store.PayamProgress(p.ID),
		"Activities":       store.PayamActivities(p.ID),
		"Leaders":          store.PayamLeadership(p.ID),
		"Donations":        store.VerifiedDonations(p.ID),
		"Media":            store.MediaByPayam(p.ID),
		"Others":           others,
	}, handler.BaseLayout)
}
