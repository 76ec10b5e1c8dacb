// Package handler holds what the page handlers share: their dependencies,
// route constants and page rendering.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/teca-org/teca-web/internal/config"
	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/session"
)

// ErrNilEnv is returned by Init when the app or a dependency is missing.
var ErrNilEnv = errors.New(ErrNilEnvFatalLogMsg)

// Env bundles the dependencies of the page handlers.
type Env struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Content  *content.Store
	Sessions *session.Manager
}

// Check returns ErrNilEnv unless app and every dependency are set.
func (e *Env) Check(app *fiber.App) error {
	if app == nil || e == nil || e.Cfg == nil || e.DB == nil || e.Content == nil || e.Sessions == nil {
		return ErrNilEnv
	}

	return nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, env *Env) error
}
