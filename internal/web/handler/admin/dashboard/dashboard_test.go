package dashboard

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/navigation"
	"github.com/teca-org/teca-web/internal/web/webtest"
)

func TestDashboard(t *testing.T) {
	env := webtest.NewEnv(t)
	views := &webtest.Recorder{}
	app := webtest.NewAppWithViews(env, views)

	var s Service
	require.NoError(t, s.Init(app, env))

	_, err := audit.Record(context.Background(), env.DB, audit.Entry{Action: audit.ActionLogin, Actor: "admin@teca.org", Success: true})
	require.NoError(t, err)

	t.Run("anonymous", func(t *testing.T) {
		resp, _ := webtest.Get(t, app, Path, "")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/admin/login?from=%2Fadmin", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("editor", func(t *testing.T) {
		resp, body := webtest.Get(t, app, Path, webtest.SignIn(t, env, auth.RoleEditor))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, TemplateName, body)

		_, data, layout := views.Last()
		assert.Equal(t, handler.AdminLayout, layout)
		assert.Equal(t, 5, data["NewsCount"])
		assert.Equal(t, 4, data["EventCount"])
		assert.Equal(t, 2, data["PendingPledges"])
		assert.Equal(t, int64(17500), data["VerifiedRaised"])
		assert.NotContains(t, data, "RecentAudit")

		menu, ok := data["AdminMenu"].([]navigation.Item)
		require.True(t, ok)
		require.Len(t, menu, 2)
		assert.Equal(t, "/admin/news", menu[1].URL)
	})

	t.Run("finance", func(t *testing.T) {
		resp, _ := webtest.Get(t, app, Path, webtest.SignIn(t, env, auth.RoleFinance))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		_, data, _ := views.Last()
		assert.Len(t, data["RecentAudit"], 1)
	})
}
