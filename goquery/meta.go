package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

// PreviewImage finds a canonical preview image from meta tags: og:image
// first, twitter:image as fallback. Attribute order within the tag does not
// matter. Returns "" when no absolute http(s) URL is found. The result is
// advisory; it seeds the LLM prompt so the model need not re-derive the
// image.
func PreviewImage(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	selectors := []string{
		`meta[property="og:image"]`,
		`meta[name="og:image"]`,
		`meta[name="twitter:image"]`,
		`meta[property="twitter:image"]`,
	}
	for _, selector := range selectors {
		var found string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			content := strings.TrimSpace(sel.AttrOr("content", ""))
			if salesite.IsAbsoluteHTTPURL(content) {
				found = content
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}
