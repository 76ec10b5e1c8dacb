// Package news renders the news list and the article pages.
package news

import (
	"errors"
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the news list.
	Path = handler.RootPath + "news"

	// TemplateList is the template of the news list.
	TemplateList = "news/list"
	// TemplateDetail is the template of a single article.
	TemplateDetail = "news/detail"
)

// Service is the news handler service.
type Service struct {
	env *handler.Env
}

// Handler is the news handler.
var Handler = Service{}

// Init initializes the news handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, s.List)
	app.Get(Path+"/:slug", s.Detail)

	return nil
}

// List renders the news list filtered by the q and tag query parameters.
func (s *Service) List(c *fiber.Ctx) error {
	query := c.Query("q")
	tag := c.Query("tag")

	nav := navigation.NewContext("News & Updates", "news", "list").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("News", Path, true)

	return handler.Render(c, s.env, TemplateList, fiber.Map{
		"Navigation": nav,
		"News":       s.env.Content.FilterNews(query, tag),
		"Tags":       s.env.Content.NewsTags(),
		"Query":      query,
		"Tag":        tag,
	}, handler.BaseLayout)
}

// Detail renders one article.
func (s *Service) Detail(c *fiber.Ctx) error {
	article, err := s.env.Content.NewsBySlug(c.Params("slug"))
	if errors.Is(err, content.ErrNotFound) {
		return handler.NotFound(c, s.env)
	}

	if err != nil {
		return err
	}

	nav := navigation.NewContext(article.Title, "news", "detail").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("News", Path, false).
		AddBreadcrumb(article.Title, Path+"/"+article.Slug, true)

	return handler.Render(c, s.env, TemplateDetail, fiber.Map{
		"Navigation": nav,
		"Article":    article,
		"Related":    related(s.env.Content.News(), article),
	}, handler.BaseLayout)
}

// related returns up to two other articles sharing a tag with a.
func related(all []content.Article, a content.Article) []content.Article {
	const maxRelated = 2

	out := make([]content.Article, 0, maxRelated)

	for _, other := range all {
		if other.ID == a.ID || len(out) == maxRelated {
			continue
		}

		if slices.ContainsFunc(other.Tags, func(t string) bool { return slices.Contains(a.Tags, t) }) {
			out = append(out, other)
		}
	}

	return out
}
