package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cragdex/cragdex"
)

// gradeSelectors are tried in order; the first non-empty match wins.
// The three span variants cover the YDS, Hueco, and V-scale grade markup;
// the h2 form is the secondary heading-style grade marker.
var gradeSelectors = []string{
	"span.rateYDS",
	"span.rateHueco",
	"span.rateVScale",
	"h2.inline-block.mr-2",
}

// ExtractBasicInfo returns the route name and difficulty grade.
// The name is the text of the first h1; the grade comes from the first
// matching grade marker. Both fall back to "N/A"; absence is routine.
func ExtractBasicInfo(doc *goquery.Document) (name, difficulty string) {
	name = cragdex.FallbackName
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		name = strings.TrimSpace(h1.Text())
	}

	difficulty = cragdex.FallbackDifficulty
	for _, selector := range gradeSelectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			difficulty = text
			break
		}
	}

	return name, difficulty
}
