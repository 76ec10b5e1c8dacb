package payams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/db/controller/audit"
	"github.com/teca-org/teca-web/internal/web/webtest"
)

func post(t *testing.T, app *fiber.App, target string, form url.Values, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, _ := webtest.Do(t, app, req, cookie)

	return resp
}

func TestUpdate(t *testing.T) {
	env := webtest.NewEnv(t)
	views := &webtest.Recorder{}
	app := webtest.NewAppWithViews(env, views)

	var s Service
	require.NoError(t, s.Init(app, env))

	cookie := webtest.SignIn(t, env, auth.RoleFinance)

	resp := post(t, app, Path+"/1", url.Values{
		"raised_amount":    {"75000"},
		"requested_amount": {"150000"},
		"description":      {"Water and schools"},
	}, cookie)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, Path+"?updated=1", resp.Header.Get(fiber.HeaderLocation))

	p, err := env.Content.PayamByID("1")
	require.NoError(t, err)
	assert.Equal(t, int64(75000), p.RaisedAmount)
	assert.Equal(t, "Water and schools", p.Description)

	entries, err := audit.List(context.Background(), env.DB, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ajuong raised=75000 requested=150000", entries[0].Detail)
	assert.Equal(t, "finance@teca.org", entries[0].Actor)

	resp, body := webtest.Get(t, app, Path, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, body)

	_, data, _ := views.Last()
	summary, ok := data["Summary"].(content.FundraisingSummary)
	require.True(t, ok)
	assert.Equal(t, 50, summary.Payams[0].Progress)
}

func TestUpdateRejected(t *testing.T) {
	env := webtest.NewEnv(t)
	app := webtest.NewApp(env)

	var s Service
	require.NoError(t, s.Init(app, env))

	valid := url.Values{"raised_amount": {"1"}, "requested_amount": {"2"}}

	tests := []struct {
		name   string
		role   auth.Role
		target string
		form   url.Values
		want   int
	}{
		{"editor", auth.RoleEditor, Path + "/1", valid, http.StatusForbidden},
		{"unknown payam", auth.RoleCommittee, Path + "/42", valid, http.StatusNotFound},
		{"negative raised", auth.RoleCommittee, Path + "/1", url.Values{"raised_amount": {"-5"}, "requested_amount": {"2"}}, http.StatusBadRequest},
		{"zero requested", auth.RoleSuperAdmin, Path + "/1", url.Values{"raised_amount": {"5"}, "requested_amount": {"0"}}, http.StatusBadRequest},
		{"not a number", auth.RoleSuperAdmin, Path + "/1", url.Values{"raised_amount": {"many"}, "requested_amount": {"2"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.target, tt.form, webtest.SignIn(t, env, tt.role))
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}

	p, err := env.Content.PayamByID("1")
	require.NoError(t, err)
	assert.Equal(t, int64(45000), p.RaisedAmount)

	entries, err := audit.List(context.Background(), env.DB, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
