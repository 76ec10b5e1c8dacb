package cleanpath

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPath(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Get("/news/:slug", func(c *fiber.Ctx) error { return c.SendString(c.Params("slug")) })
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("home") })

	tests := []struct {
		target       string
		wantStatus   int
		wantLocation string
	}{
		{"/", http.StatusOK, ""},
		{"/news/a", http.StatusOK, ""},
		{"/news//a", http.StatusMovedPermanently, "/news/a"},
		{"/news/./a?x=1", http.StatusMovedPermanently, "/news/a?x=1"},
		{"/news/a/", http.StatusMovedPermanently, "/news/a"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantLocation, resp.Header.Get(fiber.HeaderLocation))
		})
	}
}

func TestNext(t *testing.T) {
	app := fiber.New()
	app.Use(New(Config{Next: func(*fiber.Ctx) bool { return true }}))
	app.Get("/a", func(c *fiber.Ctx) error { return c.SendString("a") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/a/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
