package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cragdex/cragdex"
)

// ExtractRatings returns user ratings in document scan order. A rating is
// emitted only when the widget contains at least one filled star; user and
// comment are resolved best-effort from the widget's parent element and
// may be absent independently.
func ExtractRatings(doc *goquery.Document) []cragdex.Rating {
	var ratings []cragdex.Rating

	doc.Find("div.star-rating, span.scoreStars").Each(func(_ int, widget *goquery.Selection) {
		filled := 0
		widget.Find("i.fa-star, span.star").Each(func(_ int, star *goquery.Selection) {
			if star.HasClass("filled") || star.HasClass("active") {
				filled++
			}
		})

		// Zero-star widgets are dropped even when a user or comment is
		// present; written reviews without a star rating are not counted.
		if filled == 0 {
			return
		}

		rating := cragdex.Rating{Stars: filled}

		parent := widget.Parent()
		if parent.Length() > 0 {
			if user := parent.Find(`a[href*="/user/"]`).First(); user.Length() > 0 {
				rating.User = strings.TrimSpace(user.Text())
			}
			comment := parent.Find("div.comment").First()
			if comment.Length() == 0 {
				comment = parent.Find("p").First()
			}
			if comment.Length() > 0 {
				rating.Comment = strings.TrimSpace(comment.Text())
			}
		}

		ratings = append(ratings, rating)
	})

	return ratings
}
