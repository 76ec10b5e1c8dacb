package search

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/search"
	"github.com/teca-org/teca-web/internal/web/webtest"
)

func newTestApp(t *testing.T) (*fiber.App, *webtest.Recorder) {
	t.Helper()

	env := webtest.NewEnv(t)
	views := &webtest.Recorder{}
	app := webtest.NewAppWithViews(env, views)

	var s Service
	require.NoError(t, s.Init(app, env))

	return app, views
}

func apiSearch(t *testing.T, app *fiber.App, q string) Response {
	t.Helper()

	resp, body := webtest.Get(t, app, APIPath+"?q="+url.QueryEscape(q), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))

	var out Response
	require.NoError(t, json.Unmarshal([]byte(body), &out))

	return out
}

func TestAPI(t *testing.T) {
	app, _ := newTestApp(t)

	got := apiSearch(t, app, "Water")
	assert.Equal(t, "Water", got.Query)
	require.Len(t, got.Results, 5)
	assert.Equal(t, search.TypeNews, got.Results[0].Type)
	assert.Equal(t, "/news/teca-launches-major-resettlement-initiative", got.Results[0].URL)
	assert.Equal(t, "/resettlement/payams/ajuong", got.Results[4].URL)
}

func TestAPIShortQuery(t *testing.T) {
	app, _ := newTestApp(t)

	before := testutil.ToFloat64(queries.WithLabelValues("api", OutcomeShort))

	resp, body := webtest.Get(t, app, APIPath+"?q=w", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"query":"w","results":[]}`, body)

	assert.InDelta(t, before+1, testutil.ToFloat64(queries.WithLabelValues("api", OutcomeShort)), 0)
}

func TestAPIMissCounted(t *testing.T) {
	app, _ := newTestApp(t)

	before := testutil.ToFloat64(queries.WithLabelValues("api", OutcomeMiss))

	assert.Empty(t, apiSearch(t, app, "no-such-words").Results)
	assert.InDelta(t, before+1, testutil.ToFloat64(queries.WithLabelValues("api", OutcomeMiss)), 0)
}

func TestPage(t *testing.T) {
	app, views := newTestApp(t)

	tests := []struct {
		name     string
		q        string
		searched bool
		results  int
	}{
		{"empty", "", false, 0},
		{"short", " a ", false, 0},
		{"hits", "pyramid hotel", true, 1},
		{"miss", "zzzz", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := webtest.Get(t, app, Path+"?q="+url.QueryEscape(tt.q), "")
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, TemplateName, body)

			_, data, _ := views.Last()
			assert.Equal(t, tt.q, data["Query"])
			assert.Equal(t, tt.searched, data["Searched"])
			assert.Len(t, data["Results"], tt.results)
		})
	}
}
