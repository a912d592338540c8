package lifecycle_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbound/internal/domain"
	"netbound/internal/lifecycle"
)

func networkID(n domain.Network) string { return n.ID }

func paginateQuery(limit int, marker string, reverse bool) lifecycle.Query {
	base, _ := url.Parse("http://example.test/v2.0/networks?limit=1")
	return lifecycle.Query{Limit: limit, Marker: marker, Reverse: reverse, Base: base}
}

func linkByRel(t *testing.T, links []lifecycle.Link, rel string) url.Values {
	t.Helper()
	for _, l := range links {
		if l.Rel == rel {
			u, err := url.Parse(l.Href)
			require.NoError(t, err)
			return u.Query()
		}
	}
	t.Fatalf("no %q link in %v", rel, links)
	return nil
}

func hasRel(links []lifecycle.Link, rel string) bool {
	for _, l := range links {
		if l.Rel == rel {
			return true
		}
	}
	return false
}

func TestPaginateFirstPage(t *testing.T) {
	items := []domain.Network{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	page, err := lifecycle.Paginate(items, networkID, paginateQuery(1, "", false))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].ID)

	next := linkByRel(t, page.Links, "next")
	assert.Equal(t, "b", next.Get("marker"))
	assert.Equal(t, "1", next.Get("limit"))
	assert.False(t, hasRel(page.Links, "previous"))
}

func TestPaginateMiddlePage(t *testing.T) {
	items := []domain.Network{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	page, err := lifecycle.Paginate(items, networkID, paginateQuery(1, "b", false))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "b", page.Items[0].ID)

	next := linkByRel(t, page.Links, "next")
	assert.Equal(t, "c", next.Get("marker"))

	prev := linkByRel(t, page.Links, "previous")
	assert.Equal(t, "b", prev.Get("marker"))
	assert.Equal(t, "true", prev.Get("page_reverse"))
}

func TestPaginateLastPage(t *testing.T) {
	items := []domain.Network{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	page, err := lifecycle.Paginate(items, networkID, paginateQuery(2, "b", false))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "b", page.Items[0].ID)
	assert.Equal(t, "c", page.Items[1].ID)
	assert.False(t, hasRel(page.Links, "next"))
	assert.True(t, hasRel(page.Links, "previous"))
}

func TestPaginateReverse(t *testing.T) {
	items := []domain.Network{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	// The reverse page holds the run immediately before the marker.
	page, err := lifecycle.Paginate(items, networkID, paginateQuery(1, "b", true))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].ID)
}

func TestPaginateReverseWithoutMarker(t *testing.T) {
	items := []domain.Network{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	page, err := lifecycle.Paginate(items, networkID, paginateQuery(2, "", true))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "b", page.Items[0].ID)
	assert.Equal(t, "c", page.Items[1].ID)
}

func TestPaginateUnknownMarker(t *testing.T) {
	items := []domain.Network{{ID: "a"}, {ID: "b"}}

	_, err := lifecycle.Paginate(items, networkID, paginateQuery(1, "zzz", false))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaginateLimitBeyondEnd(t *testing.T) {
	items := []domain.Network{{ID: "a"}, {ID: "b"}}

	page, err := lifecycle.Paginate(items, networkID, paginateQuery(10, "", false))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Empty(t, page.Links)
}
