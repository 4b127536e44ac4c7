package goquery_test

import (
	"testing"

	"github.com/cragdex/cragdex"
	"github.com/cragdex/cragdex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverRouteLinks(t *testing.T) {
	t.Parallel()

	t.Run("keeps route links and drops area links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/route/1/a">A</a>
<a href="/route/1/a">A again</a>
<a href="/area/2/b">B</a>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		links, err := goquery.DiscoverRouteLinks(doc, "https://example.com", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/route/1/a"}, links)
	})

	t.Run("truncates to max count", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/route/1/a">A</a>
<a href="/route/2/b">B</a>
<a href="/route/3/c">C</a>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		links, err := goquery.DiscoverRouteLinks(doc, "https://example.com", 2)
		require.NoError(t, err)
		assert.Len(t, links, 2)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<html><body></body></html>`)
		require.NoError(t, err)

		_, err = goquery.DiscoverRouteLinks(doc, "://bad", 0)
		require.Error(t, err)
		assert.Equal(t, cragdex.EINVALID, cragdex.ErrorCode(err))
	})
}
