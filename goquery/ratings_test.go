package goquery_test

import (
	"testing"

	"github.com/cragdex/cragdex"
	"github.com/cragdex/cragdex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRatings(t *testing.T) {
	t.Parallel()

	t.Run("counts filled stars and resolves user and comment", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="review">
	<div class="star-rating">
		<i class="fa-star filled"></i>
		<i class="fa-star filled"></i>
		<i class="fa-star filled"></i>
		<i class="fa-star"></i>
	</div>
	<a href="/user/123/alice">alice</a>
	<div class="comment">Amazing exposure on the headwall.</div>
</div>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		ratings := goquery.ExtractRatings(doc)
		require.Len(t, ratings, 1)
		assert.Equal(t, cragdex.Rating{
			Stars:   3,
			User:    "alice",
			Comment: "Amazing exposure on the headwall.",
		}, ratings[0])
	})

	t.Run("accepts active marker and span star markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<span class="scoreStars">
	<span class="star active"></span>
	<span class="star active"></span>
	<span class="star"></span>
</span>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		ratings := goquery.ExtractRatings(doc)
		require.Len(t, ratings, 1)
		assert.Equal(t, 2, ratings[0].Stars)
	})

	t.Run("never emits a rating with zero filled stars", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="wrapper">
	<div class="star-rating">
		<i class="fa-star"></i>
		<i class="fa-star"></i>
	</div>
	<a href="/user/9/bob">bob</a>
	<p>Review without stars.</p>
</div>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		assert.Empty(t, goquery.ExtractRatings(doc))
	})

	t.Run("falls back to paragraph comment", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="wrapper">
	<div class="star-rating"><i class="fa-star filled"></i></div>
	<p>Soft for the grade.</p>
</div>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		ratings := goquery.ExtractRatings(doc)
		require.Len(t, ratings, 1)
		assert.Equal(t, "Soft for the grade.", ratings[0].Comment)
		assert.Empty(t, ratings[0].User)
	})

	t.Run("emits ratings in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><div class="star-rating"><i class="fa-star filled"></i></div></div>
<div><span class="scoreStars"><span class="star active"></span><span class="star active"></span></span></div>
</body></html>`

		doc, err := goquery.Parse(html)
		require.NoError(t, err)

		ratings := goquery.ExtractRatings(doc)
		require.Len(t, ratings, 2)
		assert.Equal(t, 1, ratings[0].Stars)
		assert.Equal(t, 2, ratings[1].Stars)
	})
}
