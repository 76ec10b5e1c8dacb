package donations

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/auth"
	"github.com/teca-org/teca-web/internal/web/handler/admin/pager"
	"github.com/teca-org/teca-web/internal/web/webtest"
)

func TestList(t *testing.T) {
	env := webtest.NewEnv(t)
	views := &webtest.Recorder{}
	app := webtest.NewAppWithViews(env, views)

	var s Service
	require.NoError(t, s.Init(app, env))

	cookie := webtest.SignIn(t, env, auth.RoleCommittee)

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?verified=verified", 3},
		{"?verified=unverified", 0},
		{"?pageSize=2&page=2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, body := webtest.Get(t, app, Path+tt.query, cookie)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, TemplateName, body)

			_, data, _ := views.Last()
			assert.Len(t, data["Donations"], tt.want)
			assert.Equal(t, int64(17500), data["Verified"])
			assert.Equal(t, int64(0), data["Unverified"])
		})
	}

	_, data, _ := views.Last()
	page, ok := data["Page"].(pager.Data)
	require.True(t, ok)
	assert.Equal(t, 2, page.TotalPages)

	rows, ok := data["Donations"].([]Row)
	require.True(t, ok)
	assert.Equal(t, "Nyuak", rows[0].Payam.Name)
	assert.Equal(t, int64(10000), rows[0].Amount)
}

func TestListForbidden(t *testing.T) {
	env := webtest.NewEnv(t)
	app := webtest.NewApp(env)

	var s Service
	require.NoError(t, s.Init(app, env))

	resp, body := webtest.Get(t, app, Path, webtest.SignIn(t, env, auth.RoleEditor))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", body)
}
