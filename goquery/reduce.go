package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// ReduceLimit is the character ceiling on reduced HTML handed to the LLM.
const ReduceLimit = 50000

// fragmentSelectors are the ordered extraction patterns, most
// price-signal-dense first.
var fragmentSelectors = []string{
	`[class*="price"], [class*="Price"]`,
	`[class*="product"], [class*="Product"]`,
	`script[type="application/ld+json"], script[type="application/json"]`,
	`meta[property^="og:"]`,
	`h1`,
}

// RelevantFragments returns the likely-relevant fragments of a product
// page, in pattern order: elements with price/product classes, embedded
// JSON script blocks, Open Graph metas, and the first heading. Duplicate
// fragments are dropped.
func RelevantFragments(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var fragments []string
	for i, selector := range fragmentSelectors {
		matches := doc.Find(selector)
		if i == len(fragmentSelectors)-1 {
			// First heading only.
			matches = matches.First()
		}
		matches.Each(func(_ int, sel *goquery.Selection) {
			outer, err := goquery.OuterHtml(sel)
			if err != nil {
				return
			}
			outer = strings.TrimSpace(outer)
			if outer == "" {
				return
			}
			if _, ok := seen[outer]; ok {
				return
			}
			seen[outer] = struct{}{}
			fragments = append(fragments, outer)
		})
	}
	return fragments
}

// ReduceHTML trims raw HTML to a bounded set of likely-relevant fragments
// so the LLM call stays within its input ceiling. When no pattern matches,
// it falls back to a head-truncated slice of the raw document.
func ReduceHTML(html string) string {
	fragments := RelevantFragments(html)
	if len(fragments) == 0 {
		return truncate(html, ReduceLimit)
	}
	return truncate(strings.Join(fragments, "\n"), ReduceLimit)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// Back up to a rune boundary so the cut never leaves a partial
	// multi-byte sequence at the tail.
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
