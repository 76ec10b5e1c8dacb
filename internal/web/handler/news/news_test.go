package news

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/content"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/webtest"
)

func TestNews(t *testing.T) {
	env := webtest.NewEnv(t)
	views := &webtest.Recorder{}
	app := webtest.NewAppWithViews(env, views)

	var s Service
	require.NoError(t, s.Init(app, env))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"list", "/news", http.StatusOK, TemplateList},
		{"filtered list", "/news?q=water&tag=ajuong", http.StatusOK, TemplateList},
		{"article", "/news/water-wells-completed-ajuong-payam", http.StatusOK, TemplateDetail},
		{"missing article", "/news/missing", http.StatusNotFound, "errors/notfound"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := webtest.Get(t, app, tt.target, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, body)

			_, data, layout := views.Last()
			assert.Equal(t, handler.BaseLayout, layout)
			assert.Equal(t, env.Cfg.Title, data["SiteTitle"])
		})
	}
}

func TestNewsListData(t *testing.T) {
	env := webtest.NewEnv(t)
	views := &webtest.Recorder{}
	app := webtest.NewAppWithViews(env, views)

	var s Service
	require.NoError(t, s.Init(app, env))

	webtest.Get(t, app, "/news?tag=infrastructure", "")

	_, data, _ := views.Last()
	articles, ok := data["News"].([]content.Article)
	require.True(t, ok)
	require.Len(t, articles, 2)
	assert.Equal(t, "infrastructure", data["Tag"])
}

func TestRelated(t *testing.T) {
	all := content.Canonical().News

	got := related(all, all[0])
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.Empty(t, related(all, content.Article{ID: "x", Tags: []string{"none"}}))
}

func TestInitNilEnv(t *testing.T) {
	var s Service
	require.ErrorIs(t, s.Init(fiber.New(), nil), handler.ErrNilEnv)
	require.ErrorIs(t, s.Init(nil, &handler.Env{}), handler.ErrNilEnv)
}
