// Package goquery extracts product signals from raw HTML using CSS
// selection: embedded structured-data markup, preview-image meta tags, and
// the relevance-reduction pass that bounds LLM input size. All functions
// are pure with respect to the network; they see only the HTML string.
package goquery

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

// StructuredConfidence is the fixed confidence assigned to records built
// from structured-data markup. These records bypass the scorer.
const StructuredConfidence = 95

// StructuredProduct scans embedded JSON-LD blocks for a schema.org Product
// entity with a usable (name, image, price) triple. Returns nil when no
// block yields one; that is "no result", not a failure, and the caller
// proceeds to the next phase. Malformed blocks are skipped silently.
func StructuredProduct(html string, pageURL string) *salesite.ProductRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var record *salesite.ProductRecord
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var raw any
		if err := json.Unmarshal([]byte(sel.Text()), &raw); err != nil {
			return true // skip unparseable block
		}
		for _, entity := range flattenEntities(raw) {
			if r := productFromEntity(entity, pageURL); r != nil {
				record = r
				return false
			}
		}
		return true
	})
	return record
}

// flattenEntities unwraps container and @graph forms into a flat entity list.
func flattenEntities(raw any) []map[string]any {
	var entities []map[string]any
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			entities = append(entities, flattenEntities(item)...)
		}
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				entities = append(entities, flattenEntities(item)...)
			}
			return entities
		}
		entities = append(entities, v)
	}
	return entities
}

// productFromEntity builds a record from a Product-typed entity, or nil if
// the entity is not a Product or lacks a valid (name, image, price) triple.
func productFromEntity(entity map[string]any, pageURL string) *salesite.ProductRecord {
	if !typeMatches(entity["@type"], "Product") {
		return nil
	}

	name, _ := entity["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	image := normalizeImage(entity["image"])
	if image == "" {
		return nil
	}

	sale, was := offerPrices(entity["offers"])
	if sale <= 0 {
		return nil
	}

	record := &salesite.ProductRecord{
		Name:       name,
		ImageURL:   image,
		SalePrice:  sale,
		Confidence: StructuredConfidence,
		URL:        pageURL,
	}
	if was > sale {
		record.OriginalPrice = &was
		record.PercentOff = salesite.PercentOff(was, sale)
	}
	return record
}

// typeMatches handles both "Product" and ["Product", ...] @type forms.
func typeMatches(v any, want string) bool {
	switch t := v.(type) {
	case string:
		return t == want
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

// normalizeImage reduces the array, object, and plain string image forms to
// a single absolute http(s) URL, or "" when none qualifies. Placeholder
// image hosts never qualify, in any phase.
func normalizeImage(v any) string {
	switch img := v.(type) {
	case string:
		if salesite.IsAbsoluteHTTPURL(img) && salesite.PlaceholderImageHost(img) == "" {
			return img
		}
	case []any:
		for _, item := range img {
			if u := normalizeImage(item); u != "" {
				return u
			}
		}
	case map[string]any:
		for _, key := range []string{"url", "contentUrl"} {
			if u := normalizeImage(img[key]); u != "" {
				return u
			}
		}
	}
	return ""
}

// offerPrices reads nested offer data. Returns the sale price and any
// higher "was" price present (highPrice on aggregate offers).
func offerPrices(v any) (sale float64, was float64) {
	offer, ok := firstOffer(v)
	if !ok {
		return 0, 0
	}

	sale, _ = parsePrice(offer["price"])
	if high, ok := parsePrice(offer["highPrice"]); ok {
		if sale <= 0 {
			if low, ok := parsePrice(offer["lowPrice"]); ok {
				sale = low
			}
		}
		was = high
	}
	return sale, was
}

func firstOffer(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case []any:
		for _, item := range o {
			if m, ok := item.(map[string]any); ok {
				return m, true
			}
		}
	}
	return nil, false
}

// parsePrice accepts JSON number and string price forms. Currency symbols
// and grouping commas in string prices are tolerated.
func parsePrice(v any) (float64, bool) {
	switch p := v.(type) {
	case float64:
		return p, p > 0
	case string:
		cleaned := strings.TrimSpace(p)
		cleaned = strings.TrimLeft(cleaned, "$€£ ")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, f > 0
	}
	return 0, false
}
