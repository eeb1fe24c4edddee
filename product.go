package salesite

import (
	"math"
	"net/url"
	"strings"
)

// ExtractionMethod identifies which pipeline phase produced a record.
type ExtractionMethod string

// Extraction methods. The structured-data phase short-circuits the LLM
// phase, so a record carries exactly one of these.
const (
	MethodStructuredData ExtractionMethod = "structured-data"
	MethodAIExtraction   ExtractionMethod = "ai-extraction"
)

// ProductRecord is a structured sale record extracted from a product page.
// Records are constructed once per successful extraction and are not
// mutated afterwards; persistence is the caller's concern.
type ProductRecord struct {
	Name          string   `json:"name"`
	ImageURL      string   `json:"imageUrl"`
	OriginalPrice *float64 `json:"originalPrice"`
	SalePrice     float64  `json:"salePrice"`
	PercentOff    int      `json:"percentOff"`
	Confidence    int      `json:"confidence"`
	URL           string   `json:"url"`
}

// Validate returns an error if the record violates the pricing invariant:
// a non-nil original price must exceed the sale price and agree with the
// rounded percent-off; without an original price, percent-off must be zero.
func (p *ProductRecord) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "product name required")
	}
	if !IsAbsoluteHTTPURL(p.ImageURL) {
		return Errorf(EINVALID, "product image URL must be absolute http(s), got %q", p.ImageURL)
	}
	if p.SalePrice <= 0 {
		return Errorf(EINVALID, "sale price must be positive")
	}
	if p.Confidence < 0 || p.Confidence > 100 {
		return Errorf(EINVALID, "confidence must be within 0-100, got %d", p.Confidence)
	}
	if p.OriginalPrice == nil {
		if p.PercentOff != 0 {
			return Errorf(EINVALID, "percent off must be 0 without an original price")
		}
		return nil
	}
	if *p.OriginalPrice <= p.SalePrice {
		return Errorf(EINVALID, "original price %.2f must exceed sale price %.2f", *p.OriginalPrice, p.SalePrice)
	}
	if p.PercentOff != PercentOff(*p.OriginalPrice, p.SalePrice) {
		return Errorf(EINVALID, "percent off %d disagrees with prices", p.PercentOff)
	}
	return nil
}

// PercentOff computes the rounded discount percentage for a price pair.
func PercentOff(original, sale float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((original - sale) / original * 100))
}

// IsAbsoluteHTTPURL reports whether raw is an absolute http or https URL.
func IsAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Extraction is the success outcome of a per-URL extraction.
type Extraction struct {
	Product    ProductRecord    `json:"product"`
	Method     ExtractionMethod `json:"extractionMethod"`
	Confidence int              `json:"confidence"`

	// Diagnostics is populated only when Options.Diagnostics is set.
	Diagnostics *Diagnostics `json:"testMetadata,omitempty"`
}

// Diagnostics is the audit trail recorded in diagnostics mode. It exists
// for offline analysis of scorer behavior and is never used for control
// flow.
type Diagnostics struct {
	HTMLHash        string                 `json:"htmlHash"`
	HTMLLen         int                    `json:"htmlLen"`
	ReducedLen      int                    `json:"reducedLen"`
	PreviewImage    string                 `json:"previewImage,omitempty"`
	VariantsChecked []string               `json:"variantsChecked,omitempty"`
	VariantMatched  string                 `json:"variantMatched,omitempty"`
	PriceFound      bool                   `json:"priceFound"`
	Adjustments     []ConfidenceAdjustment `json:"adjustments,omitempty"`
	FetchMillis     int64                  `json:"fetchMillis"`
	CompleteMillis  int64                  `json:"completeMillis"`
}

// ConfidenceAdjustment records one scorer step and its effect.
type ConfidenceAdjustment struct {
	Reason string `json:"reason"`
	Delta  int    `json:"delta"`
	After  int    `json:"after"`
}

// Options carries per-call extraction options.
type Options struct {
	// Diagnostics keeps low-confidence results instead of rejecting them
	// and attaches the full diagnostic trail to the extraction.
	Diagnostics bool

	// AutofillBrand is an optional predicate passed through to the caller's
	// downstream use; extraction itself never consults it.
	AutofillBrand func(name string) bool
}

// Domain returns the circuit-breaker key for a URL: the host with any
// leading "www." stripped. Returns an empty string if the URL is invalid.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// placeholderImageHosts are image hosts that serve stock placeholder
// graphics. A product image on one of these is never acceptable, no matter
// which extraction phase produced it.
var placeholderImageHosts = []string{
	"placeholder.com",
	"placehold.co",
	"placehold.it",
	"placekitten.com",
	"dummyimage.com",
	"example.com",
}

// PlaceholderImageHost returns the placeholder domain matching an image
// URL's host, or "" when the host is not a known placeholder service.
// Subdomains match their parent entry.
func PlaceholderImageHost(imageURL string) string {
	host := Domain(imageURL)
	for _, placeholder := range placeholderImageHosts {
		if host == placeholder || strings.HasSuffix(host, "."+placeholder) {
			return placeholder
		}
	}
	return ""
}
