// Package search serves the site search page and its JSON endpoint.
package search

import (
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/teca-org/teca-web/internal/search"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the search page.
	Path = handler.RootPath + "search"

	// APIPath is the path of the JSON endpoint used by the search box.
	APIPath = handler.RootPath + "api/search"

	// TemplateName is the name of the search page template.
	TemplateName = "search/index"

	// QueryParam is the query parameter carrying the search text.
	QueryParam = "q"
)

// Outcome label values of the query counter.
const (
	OutcomeShort = "short"
	OutcomeMiss  = "miss"
	OutcomeHit   = "hit"
)

var queries = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "search_queries_total",
		Help: "Number of search queries, differentiated by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// Response is the body of the JSON endpoint.
type Response struct {
	Query   string          `json:"query"`
	Results []search.Result `json:"results"`
}

// Service is the search handler service.
type Service struct {
	env   *handler.Env
	index *search.Index
}

// Handler is the search handler.
var Handler = Service{}

// Init initializes the search handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env
	s.index = search.NewIndex(env.Content)

	app.Get(Path, s.Page)
	app.Get(APIPath, s.API)

	return nil
}

// Page renders the search page. The results of q are rendered on the server;
// the page script refreshes them through the JSON endpoint while typing.
func (s *Service) Page(c *fiber.Ctx) error {
	q := c.Query(QueryParam)
	results := s.run("page", q)

	nav := navigation.NewContext("Search", "search", "search").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Search", Path, true)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation": nav,
		"Query":      q,
		"Results":    results,
		"Searched":   utf8.RuneCountInString(search.Normalize(q)) >= search.MinQueryLength,
		"MinLength":  search.MinQueryLength,
	}, handler.BaseLayout)
}

// API answers with the results of q as JSON.
func (s *Service) API(c *fiber.Ctx) error {
	q := c.Query(QueryParam)

	c.Set(fiber.HeaderCacheControl, "no-store")

	return c.JSON(Response{Query: q, Results: s.run("api", q)})
}

func (s *Service) run(endpoint, q string) []search.Result {
	results := s.index.Search(q)

	outcome := OutcomeHit

	switch {
	case utf8.RuneCountInString(search.Normalize(q)) < search.MinQueryLength:
		outcome = OutcomeShort
	case len(results) == 0:
		outcome = OutcomeMiss
	}

	queries.WithLabelValues(endpoint, outcome).Inc()

	return results
}
