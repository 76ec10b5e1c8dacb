package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teca-org/teca-web/internal/content"
)

func ids(results []Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, string(r.Type)+":"+r.ID)
	}

	return out
}

func TestSearch_Water(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	got := idx.Search("water")

	assert.Equal(t, []string{
		"news:1", "news:2", "news:5",
		"leader:5",
		"payam:1",
	}, ids(got))

	for _, r := range got {
		assert.NotEqual(t, "4", r.ID, "youth skills article must not match")
	}
}

func TestSearch_CaseAndWhitespaceInsensitive(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	assert.Equal(t, ids(idx.Search("water")), ids(idx.Search("  WaTeR \t")))
}

func TestSearch_ShortQueries(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	for _, q := range []string{"", " ", "\t\n", "w", "  a  ", "é"} {
		got := idx.Search(q)
		assert.NotNil(t, got, "%q", q)
		assert.Empty(t, got, "%q", q)
	}
}

func TestSearch_TwoRuneQueryScans(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	assert.NotEmpty(t, idx.Search("ju"))
}

func TestSearch_NoMatch(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	assert.Empty(t, idx.Search("zzzz-no-such-thing"))
}

func TestSearch_EventLocation(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	got := idx.Search("pyramid hotel")
	require.Len(t, got, 1)
	assert.Equal(t, TypeEvent, got[0].Type)
	assert.Equal(t, "fundraising-dinner-gala", got[0].Slug)
	assert.Equal(t, "/events/fundraising-dinner-gala", got[0].URL)
}

func TestSearch_Projection(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	got := idx.Search("water")
	require.NotEmpty(t, got)

	article := got[1]
	assert.Equal(t, TypeNews, article.Type)
	assert.Equal(t, "Five new water wells provide clean water access to over 500 families.", article.Excerpt)
	assert.Equal(t, []string{"water", "ajuong", "infrastructure"}, article.Tags)
	assert.Equal(t, "/news/water-wells-completed-ajuong-payam", article.Link())

	leader := got[3]
	assert.Equal(t, TypeLeader, leader.Type)
	assert.Equal(t, "Abraham Mayom Deng", leader.Title)
	assert.Equal(t, "Ajuong Payam Coordinator", leader.Excerpt)
	assert.Empty(t, leader.Slug)
	assert.Empty(t, leader.Tags)
	assert.Equal(t, "/leadership", leader.Link())

	payam := got[4]
	assert.Equal(t, TypePayam, payam.Type)
	assert.Equal(t, "ajuong", payam.Slug)
	assert.Equal(t, "/resettlement/payams/ajuong", payam.URL)
}

func TestSearch_MatchesTags(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	got := idx.Search("accountability")
	require.Len(t, got, 2)
	assert.Equal(t, "news:5", ids(got)[0])
}

func TestSearch_CapPreservesScanOrder(t *testing.T) {
	data := content.Data{}

	for i := 1; i <= 5; i++ {
		data.News = append(data.News, content.Article{
			ID: fmt.Sprint(i), Title: fmt.Sprintf("Borehole report %d", i), Slug: fmt.Sprintf("borehole-%d", i),
		})
		data.Events = append(data.Events, content.Event{
			ID: fmt.Sprint(i), Title: fmt.Sprintf("Borehole opening %d", i), Slug: fmt.Sprintf("opening-%d", i),
		})
	}

	data.Payams = []content.Payam{{ID: "1", Name: "Borehole Payam", Slug: "borehole"}}

	got := NewIndex(content.NewStore(data)).Search("borehole")

	assert.Equal(t, []string{
		"news:1", "news:2", "news:3", "news:4", "news:5",
		"event:1", "event:2", "event:3",
	}, ids(got))
}

func TestSearch_Idempotent(t *testing.T) {
	idx := NewIndex(content.NewCanonicalStore())

	for _, q := range []string{"water", "juba", "community", "pa"} {
		assert.Equal(t, idx.Search(q), idx.Search(q), q)
	}
}

func TestResult_Link(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Result{Type: TypeNews, Slug: "a"}, "/news/a"},
		{Result{Type: TypeEvent, Slug: "b"}, "/events/b"},
		{Result{Type: TypeLeader}, "/leadership"},
		{Result{Type: TypePayam, Slug: "lith"}, "/resettlement/payams/lith"},
		{Result{Type: "other"}, "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.Link())
	}
}
