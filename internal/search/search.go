// Package search implements the free-text lookup used by the site search box.
//
// A query is matched as a case-insensitive substring against a fixed set of
// fields of news items, events, leaders and payams. Matches are binary; results
// keep the collection scan order and are capped at MaxResults.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/teca-org/teca-web/internal/content"
)

const (
	// MinQueryLength is the number of characters below which no scan happens.
	MinQueryLength = 2
	// MaxResults caps the number of returned results.
	MaxResults = 8
	// MaxTags caps the number of tags carried by a result.
	MaxTags = 3
)

// Type tags the collection a Result came from.
type Type string

// Type values.
const (
	TypeNews   Type = "news"
	TypeEvent  Type = "event"
	TypeLeader Type = "leader"
	TypePayam  Type = "payam"
)

// Result is the display projection of a matched item.
type Result struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Type    Type     `json:"type"`
	Slug    string   `json:"slug,omitempty"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags,omitempty"`
	URL     string   `json:"url"`
}

// Link returns the page a result points to. Leaders have no page of their own.
func (r Result) Link() string {
	switch r.Type {
	case TypeNews:
		return "/news/" + r.Slug
	case TypeEvent:
		return "/events/" + r.Slug
	case TypeLeader:
		return "/leadership"
	case TypePayam:
		return "/resettlement/payams/" + r.Slug
	default:
		return "/"
	}
}

// Source provides the collections searched by an Index.
type Source interface {
	News() []content.Article
	Events() []content.Event
	Leaders() []content.Leader
	Payams() []content.Payam
}

// Index searches a Source. It holds no state of its own.
type Index struct {
	src Source
}

// NewIndex creates an index over src.
func NewIndex(src Source) *Index {
	return &Index{src: src}
}

// Normalize trims and lower-cases a query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Search returns the items matching query in scan order news, events,
// leaders, payams, truncated to MaxResults. Queries shorter than
// MinQueryLength after normalization return an empty result without scanning.
func (i *Index) Search(query string) []Result {
	q := Normalize(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return []Result{}
	}

	c := collector{query: q, out: make([]Result, 0, MaxResults)}

	for _, a := range i.src.News() {
		if c.full() {
			return c.out
		}

		if c.matches(append([]string{a.Title, a.Excerpt, a.Body}, a.Tags...)...) {
			c.add(Result{ID: a.ID, Title: a.Title, Type: TypeNews, Slug: a.Slug, Excerpt: a.Excerpt, Tags: firstTags(a.Tags)})
		}
	}

	for _, e := range i.src.Events() {
		if c.full() {
			return c.out
		}

		if c.matches(e.Title, e.Description, e.Location) {
			c.add(Result{ID: e.ID, Title: e.Title, Type: TypeEvent, Slug: e.Slug, Excerpt: e.Description})
		}
	}

	for _, l := range i.src.Leaders() {
		if c.full() {
			return c.out
		}

		if c.matches(l.Name, l.Title, l.Bio) {
			c.add(Result{ID: l.ID, Title: l.Name, Type: TypeLeader, Excerpt: l.Title})
		}
	}

	for _, p := range i.src.Payams() {
		if c.full() {
			return c.out
		}

		if c.matches(p.Name, p.Description) {
			c.add(Result{ID: p.ID, Title: p.Name, Type: TypePayam, Slug: p.Slug, Excerpt: p.Description})
		}
	}

	return c.out
}

type collector struct {
	query string
	out   []Result
}

func (c *collector) full() bool {
	return len(c.out) >= MaxResults
}

func (c *collector) matches(fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), c.query) {
			return true
		}
	}

	return false
}

func (c *collector) add(r Result) {
	r.URL = r.Link()
	c.out = append(c.out, r)
}

func firstTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	n := min(len(tags), MaxTags)
	out := make([]string, n)
	copy(out, tags[:n])

	return out
}
