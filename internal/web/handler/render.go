package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/teca-org/teca-web/internal/db/controller/setting"
	"github.com/teca-org/teca-web/internal/web/navigation"
	"github.com/teca-org/teca-web/internal/web/session"
)

// Site setting names shown on the public pages.
const (
	SettingAnnouncement = "announcement"
	SettingContactEmail = "contact_email"

	// DefaultContactEmail is shown until a contact address is saved.
	DefaultContactEmail = "info@teca.org"
)

// Render renders template inside layout with the values every layout uses:
// the site title, the signed in identity and the menus.
func Render(c *fiber.Ctx, env *Env, template string, data fiber.Map, layout string) error {
	if data == nil {
		data = fiber.Map{}
	}

	a := session.FromLocals(c)

	data["SiteTitle"] = env.Cfg.Title
	data["Identity"] = a.Identity()
	data["PublicMenu"] = navigation.Public
	data["ContactEmail"] = setting.Value(env.DB, SettingContactEmail, DefaultContactEmail)
	data["Year"] = time.Now().Year()

	if layout == AdminLayout {
		data["AdminMenu"] = navigation.AdminMenu(a)
	}

	return c.Render(template, data, layout)
}

// NotFound renders the not found page.
func NotFound(c *fiber.Ctx, env *Env) error {
	c.Status(fiber.StatusNotFound)

	return Render(c, env, "errors/notfound", fiber.Map{
		"Navigation": navigation.NewContext("Page not found", "", ""),
	}, BaseLayout)
}
