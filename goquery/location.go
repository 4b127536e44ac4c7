package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cragdex/cragdex"
	"golang.org/x/net/html"
)

var (
	// coordRE matches a "latitude,longitude" decimal pair, optionally
	// signed, with an optional fractional part.
	coordRE = regexp.MustCompile(`(-?\d+\.?\d*),\s*(-?\d+\.?\d*)`)

	// elevationRE captures the numeric portion of an elevation reading;
	// the unit token is discarded.
	elevationRE = regexp.MustCompile(`(?i)(\d+)\s*(?:ft|feet|m|meters)`)
)

// ExtractLocation returns the route's geospatial placement. Coordinates,
// area hierarchy, and elevation are extracted independently; any subset
// may be absent.
func ExtractLocation(doc *goquery.Document) cragdex.Location {
	var loc cragdex.Location

	// Coordinates: first matching pair in any meta tag's content.
	doc.Find("meta").EachWithBreak(func(_ int, meta *goquery.Selection) bool {
		content, _ := meta.Attr("content")
		m := coordRE.FindStringSubmatch(content)
		if m == nil {
			return true
		}
		lat, latErr := strconv.ParseFloat(m[1], 64)
		lon, lonErr := strconv.ParseFloat(m[2], 64)
		if latErr != nil || lonErr != nil {
			return true
		}
		loc.Latitude = &lat
		loc.Longitude = &lon
		return false
	})

	// Area hierarchy: breadcrumb links in order, root first.
	crumbs := doc.Find("nav.breadcrumbs").First()
	if crumbs.Length() == 0 {
		crumbs = doc.Find("div.breadcrumb").First()
	}
	crumbs.Find("a").Each(func(_ int, link *goquery.Selection) {
		if text := strings.TrimSpace(link.Text()); text != "" {
			loc.AreaHierarchy = append(loc.AreaHierarchy, text)
		}
	})

	// Elevation: first text node mentioning the word, then a number
	// followed by a unit token within the enclosing element's text.
	if node := findTextNode(doc, "elevation"); node != nil {
		text := nodeText(node.Parent)
		if text == "" {
			text = node.Data
		}
		if m := elevationRE.FindStringSubmatch(text); m != nil {
			loc.Elevation = m[1]
		}
	}

	return loc
}

// findTextNode returns the first text node containing the keyword,
// case-insensitively, in depth-first document order.
func findTextNode(doc *goquery.Document, keyword string) *html.Node {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.TextNode && strings.Contains(strings.ToLower(n.Data), keyword) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return found
}

// nodeText concatenates all text content beneath n.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
