// Package user lists the admin accounts and the permissions of their roles.
// Accounts are maintained in the configuration file and seeded at start.
package user

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/db/controller/account"
	"github.com/teca-org/teca-web/internal/db/models"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/handler/admin/pager"
	"github.com/teca-org/teca-web/internal/web/middleware/guard"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the base path for user management.
	Path = handler.AdminPath + "/users"

	// TemplateList is the template for listing users.
	TemplateList = "admin/users"
)

// Row is an account with its parsed role.
type Row struct {
	models.Account
	Role auth.Role
}

// RolePermissions is one row of the role table.
type RolePermissions struct {
	Role        auth.Role
	Permissions auth.PermissionSet
}

// Service lists admin accounts.
type Service struct {
	env      *handler.Env
	accounts *account.Store
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	accounts, err := account.NewStore(env.DB)
	if err != nil {
		return err
	}

	s.env = env
	s.accounts = accounts

	app.Get(Path, guard.Require(env, auth.PermAdminUsers), s.List)

	return nil
}

// List shows the accounts matching the search query parameter, paginated.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Users", "users", "list").
		AddBreadcrumb("Dashboard", handler.AdminPath, false).
		AddBreadcrumb("Users", Path, true)

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	accounts, err := s.accounts.List(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("list accounts failed")
		c.Status(fiber.StatusInternalServerError)

		return handler.Render(c, s.env, TemplateList, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to load users",
			"Search":     search,
		}, handler.AdminLayout)
	}

	rows := make([]Row, 0, len(accounts))

	for _, a := range accounts {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(strings.ToLower(a.Email), search) {
			continue
		}

		rows = append(rows, Row{Account: a, Role: auth.Role(a.Role)})
	}

	page, pageSize := pager.Params(c)
	items, pageData := pager.Slice(rows, page, pageSize)

	table := s.env.Sessions.Permissions()
	roles := make([]RolePermissions, 0, len(auth.Roles))

	for _, r := range auth.Roles {
		roles = append(roles, RolePermissions{Role: r, Permissions: table.Resolve(r)})
	}

	return handler.Render(c, s.env, TemplateList, fiber.Map{
		"Navigation": nav,
		"Users":      items,
		"Page":       pageData,
		"Search":     search,
		"Roles":      roles,
	}, handler.AdminLayout)
}
