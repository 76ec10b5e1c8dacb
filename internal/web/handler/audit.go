package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/web/session"
)

// Audit records e with the remote address of the request. The actor defaults
// to the email of the signed in identity. Failures are logged only, an
// unavailable audit log never blocks the request.
func Audit(c *fiber.Ctx, env *Env, e audit.Entry) {
	if e.Actor == "" {
		if id := session.FromLocals(c).Identity(); id != nil {
			e.Actor = id.Email
		}
	}

	e.RemoteIP = c.IP()

	if _, err := audit.Record(c.UserContext(), env.DB, e); err != nil {
		log.Error().Err(err).Str("action", e.Action).Msg("failed to write audit entry")
	}
}
