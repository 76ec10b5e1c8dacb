// Package audit shows the admin audit log.
package audit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/auth"
	auditlog "github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/db/models"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/handler/admin/pager"
	"github.com/teca-org/teca-web/internal/web/middleware/guard"
	"github.com/teca-org/teca-web/internal/web/navigation"
)

const (
	// Path is the path of the audit log page.
	Path = handler.AdminPath + "/audit"

	// TemplateName is the name of the audit log template.
	TemplateName = "admin/audit"

	// MaxEntries caps the number of entries loaded for paging.
	MaxEntries = 1000
)

// Service is the audit log handler service.
type Service struct {
	env *handler.Env
}

// Handler is the audit log handler.
var Handler = Service{}

// Init initializes the audit log handler.
func (s *Service) Init(app *fiber.App, env *handler.Env) error {
	if err := env.Check(app); err != nil {
		return err
	}

	s.env = env

	app.Get(Path, guard.Require(env, auth.PermReadAudit), s.List)

	return nil
}

// List renders the newest audit entries, optionally restricted to one action.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Audit Log", "audit", "list").
		AddBreadcrumb("Dashboard", handler.AdminPath, false).
		AddBreadcrumb("Audit Log", Path, true)

	entries, err := auditlog.List(c.UserContext(), s.env.DB, MaxEntries)
	if err != nil {
		log.Error().Err(err).Msg("failed to load audit log")
		c.Status(fiber.StatusInternalServerError)

		return handler.Render(c, s.env, TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to load the audit log",
		}, handler.AdminLayout)
	}

	action := c.Query("action")
	if action != "" {
		filtered := make([]models.AuditEntry, 0, len(entries))

		for _, e := range entries {
			if e.Action == action {
				filtered = append(filtered, e)
			}
		}

		entries = filtered
	}

	page, pageSize := pager.Params(c)
	items, pageData := pager.Slice(entries, page, pageSize)

	return handler.Render(c, s.env, TemplateName, fiber.Map{
		"Navigation": nav,
		"Entries":    items,
		"Page":       pageData,
		"Action":     action,
		"Actions": []string{
			auditlog.ActionLogin, auditlog.ActionLogout, auditlog.ActionNewsCreate,
			auditlog.ActionPayamUpdate, auditlog.ActionSettingUpdate,
		},
	}, handler.AdminLayout)
}
