// Package guard protects the admin routes.
package guard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
	"github.com/teca-org/teca-web/internal/web/session"
)

const (
	// LoadingTemplate is rendered while the session has not settled.
	LoadingTemplate = "errors/loading"
	// DeniedTemplate is rendered when the identity lacks the permission.
	DeniedTemplate = "errors/denied"

	retryAfterSeconds = "1"
)

// Require returns a middleware admitting requests whose identity holds
// permission. An empty permission only requires a signed in user.
//
// Anonymous requests are redirected to the login page, which returns to the
// original path after a successful login.
func Require(env *handler.Env, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a := session.FromLocals(c)

		switch a.Evaluate(permission) {
		case auth.RenderTarget:
			return c.Next()

		case auth.RedirectToLogin:
			return c.Redirect(auth.LoginRedirect(handler.LoginPath, c.OriginalURL()))

		case auth.RenderLoading:
			c.Set(fiber.HeaderRetryAfter, retryAfterSeconds)
			c.Status(fiber.StatusServiceUnavailable)

			return handler.Render(c, env, LoadingTemplate, fiber.Map{
				"Navigation": navigation.NewContext("Loading", "", ""),
			}, handler.BaseLayout)

		default:
			id := a.Identity()
			log.Warn().Str("user_id", id.ID).Str("permission", permission).Str("path", c.Path()).
				Msg("user lacks required permission")

			c.Status(fiber.StatusForbidden)

			return handler.Render(c, env, DeniedTemplate, fiber.Map{
				"Navigation": navigation.NewContext("Access denied", "", ""),
				"error":      "Access denied",
			}, handler.AdminLayout)
		}
	}
}
