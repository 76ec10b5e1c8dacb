package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/logger"
	adapter "github.com/teca-org/teca-web/internal/logger/adapter/fiber"
)

type accessLine struct {
	IP     net.IP `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
	User   string `json:"user"`
}

var consoleJSON = logger.Log{
	EnableAccessLogToConsole: true,
	DisableCheckAlive:        true,
	Console:                  logger.Console{Enabled: true},
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		target string
		config adapter.Config
		want   *accessLine
	}{
		{
			name:   "console disabled",
			target: "/",
			want:   nil,
		},
		{
			name:   "root",
			target: "/",
			config: adapter.Config{Config: consoleJSON},
			want:   &accessLine{Status: fiber.StatusOK, URI: "/", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:   "double slash kept",
			target: "//news",
			config: adapter.Config{Config: consoleJSON},
			want:   &accessLine{Status: fiber.StatusNotFound, URI: "//news", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:   "query string kept",
			target: "/api/search?q=water",
			config: adapter.Config{Config: consoleJSON},
			want: &accessLine{
				Status: fiber.StatusOK, URI: "/api/search?q=water", Method: fiber.MethodGet, Host: "example.com",
			},
		},
		{
			name:   "user from locals",
			target: "/admin",
			config: adapter.Config{Config: consoleJSON, UserLocal: "user_id"},
			want: &accessLine{
				Status: fiber.StatusOK, URI: "/admin", Method: fiber.MethodGet, Host: "example.com", User: "2",
			},
		},
		{
			name:   "checkalive skipped",
			target: "/checkalive",
			config: adapter.Config{Config: consoleJSON, CheckAliveURI: "/checkalive"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := serve(t, tt.target, tt.config)

			if tt.want == nil {
				assert.Empty(t, out)
				return
			}

			require.NotEmpty(t, out)

			var got accessLine
			require.NoError(t, json.Unmarshal([]byte(out), &got))

			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.URI, got.URI)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.Host, got.Host)
			assert.Equal(t, tt.want.User, got.User)
			assert.Equal(t, net.ParseIP("0.0.0.0"), got.IP)
		})
	}
}

func TestNew_ErrorSetsCacheControl(t *testing.T) {
	app := fiber.New()
	app.Use(adapter.New())
	app.Get("/", func(*fiber.Ctx) error { return fiber.ErrTeapot })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "max-age=0", resp.Header.Get(fiber.HeaderCacheControl))
	assert.NotEmpty(t, resp.Header.Get("X-Performance"))
}

func serve(t *testing.T, target string, cfg adapter.Config) string {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = w, w

	app := fiber.New(fiber.Config{CaseSensitive: true, Immutable: true})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "2")
		return c.Next()
	})
	app.Use(adapter.New(cfg))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/admin", ok)
	app.Get("/api/search", ok)
	app.Get("/checkalive", ok)

	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout, os.Stderr = stdout, stderr
	out := <-outC

	require.NoError(t, err)

	return out
}
