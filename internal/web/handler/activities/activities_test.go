package activities

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/web/webtest"
)

func TestActivities(t *testing.T) {
	env := webtest.NewEnv(t)
	views := &webtest.Recorder{}
	app := webtest.NewAppWithViews(env, views)

	var s Service
	require.NoError(t, s.Init(app, env))

	tests := []struct {
		query      string
		wantStatus string
		wantRows   int
	}{
		{"", "", 8},
		{"?status=planned", "planned", 4},
		{"?status=ongoing", "ongoing", 3},
		{"?status=completed", "completed", 1},
		{"?status=cancelled", "", 8},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, body := webtest.Get(t, app, Path+tt.query, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, TemplateName, body)

			_, data, _ := views.Last()
			assert.Equal(t, tt.wantStatus, data["Status"])

			rows, ok := data["Activities"].([]Row)
			require.True(t, ok)
			assert.Len(t, rows, tt.wantRows)

			for _, r := range rows {
				assert.Equal(t, r.PayamID, r.Payam.ID)
			}
		})
	}
}
