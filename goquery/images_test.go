package goquery_test

import (
	"strings"
	"testing"

	"github.com/cragdex/cragdex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImages(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative paths to absolute URLs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<img src="/photos/route-topo.jpg">
<div class="photo"><img src="images/north-face.jpg"></div>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		images := goquery.ExtractImages(doc, "https://example.com")
		require.Len(t, images, 2)
		for _, img := range images {
			assert.True(t, strings.HasPrefix(img, "https://example.com/"), img)
		}
	})

	t.Run("deduplicates across selectors preserving order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="image-gallery">
	<img src="https://cdn.example.com/route-1.jpg">
	<img src="https://cdn.example.com/route-2.jpg">
	<img src="https://cdn.example.com/route-1.jpg">
</div>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		images := goquery.ExtractImages(doc, "https://example.com")
		assert.Equal(t, []string{
			"https://cdn.example.com/route-1.jpg",
			"https://cdn.example.com/route-2.jpg",
		}, images)
	})

	t.Run("falls back to lazy-load attribute", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="route-photos"><img data-src="/lazy/photo.jpg"></div>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		images := goquery.ExtractImages(doc, "https://example.com")
		assert.Equal(t, []string{"https://example.com/lazy/photo.jpg"}, images)
	})

	t.Run("ignores unrelated images", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img src="/static/logo.png"></body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		assert.Empty(t, goquery.ExtractImages(doc, "https://example.com"))
	})
}
