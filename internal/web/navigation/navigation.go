// Package navigation provides the site menus, breadcrumbs and the active page state.
package navigation

import "github.com/teca-org/teca-web/internal/auth"

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// Item is a menu entry. An empty Permission only requires a signed in user.
type Item struct {
	Title      string
	URL        string
	Section    string
	Permission string
}

// Public is the main menu of the website.
var Public = []Item{
	{Title: "Home", URL: "/", Section: "home"},
	{Title: "News", URL: "/news", Section: "news"},
	{Title: "Events", URL: "/events", Section: "events"},
	{Title: "Leadership", URL: "/leadership", Section: "leadership"},
	{Title: "Resettlement", URL: "/resettlement/payams", Section: "payams"},
	{Title: "Fundraising", URL: "/fundraising", Section: "fundraising"},
	{Title: "Activities", URL: "/activities", Section: "activities"},
	{Title: "Media", URL: "/media", Section: "media"},
	{Title: "Search", URL: "/search", Section: "search"},
}

// Admin is the full admin menu before permission filtering.
var Admin = []Item{
	{Title: "Dashboard", URL: "/admin", Section: "dashboard"},
	{Title: "News", URL: "/admin/news", Section: "news", Permission: auth.PermWriteNews},
	{Title: "Fundraising", URL: "/admin/payams", Section: "payams", Permission: auth.PermWriteDonations},
	{Title: "Donations", URL: "/admin/donations", Section: "donations", Permission: auth.PermWriteDonations},
	{Title: "Pledges", URL: "/admin/pledges", Section: "pledges", Permission: auth.PermWritePledges},
	{Title: "Audit Log", URL: "/admin/audit", Section: "audit", Permission: auth.PermReadAudit},
	{Title: "Users", URL: "/admin/users", Section: "users", Permission: auth.PermAdminUsers},
	{Title: "Settings", URL: "/admin/settings", Section: "settings", Permission: auth.PermAdminSettings},
}

// Checker reports whether a permission is granted. *auth.Authority implements it.
type Checker interface {
	HasPermission(token string) bool
}

// AdminMenu returns the admin entries the checker may open.
func AdminMenu(c Checker) []Item {
	out := make([]Item, 0, len(Admin))

	for _, item := range Admin {
		if item.Permission == "" || c.HasPermission(item.Permission) {
			out = append(out, item)
		}
	}

	return out
}
