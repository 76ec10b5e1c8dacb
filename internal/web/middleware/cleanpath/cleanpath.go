// Package cleanpath redirects requests whose path contains repeated slashes
// or dot segments to the cleaned path.
package cleanpath

import (
	"path"

	"github.com/gofiber/fiber/v2"
)

// Config defines the config for the middleware.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Status is the redirect status code.
	//
	// Optional. Default: 301
	Status int
}

// New creates the middleware.
func New(config ...Config) fiber.Handler {
	cfg := Config{Status: fiber.StatusMovedPermanently}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Status == 0 {
			cfg.Status = fiber.StatusMovedPermanently
		}
	}

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		p := c.Path()
		if p == "" || p == "/" {
			return c.Next()
		}

		clean := path.Clean(p)
		if clean == p {
			return c.Next()
		}

		if q := c.Request().URI().QueryString(); len(q) > 0 {
			clean += "?" + string(q)
		}

		return c.Redirect(clean, cfg.Status)
	}
}
