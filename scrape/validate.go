package scrape

import (
	"strings"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

// Confidence penalties and floors applied by the scorer. Each step clamps
// at its floor so a single bad signal cannot zero out a result.
const (
	penaltyPriceOrder  = 20 // originalPrice <= salePrice
	floorPriceOrder    = 30
	penaltyPercentOff  = 10 // reported percentOff disagrees by more than 2
	floorPercentOff    = 40
	penaltyPriceAbsent = 30 // salePrice not found anywhere in the raw HTML
	floorPriceAbsent   = 30

	// RejectThreshold is the confidence below which an extraction is
	// rejected outright unless diagnostics mode is active.
	RejectThreshold = 50

	// defaultConfidence stands in when the model omits its self-estimate.
	defaultConfidence = 50
)

// scoreCandidate cross-checks a model reply against the raw HTML and
// internal math, producing a validated record or a rejection. Phase-one
// (structured-data) records never pass through here; their confidence is
// fixed.
func scoreCandidate(reply *llmReply, rawHTML string, pageURL string, opts salesite.Options, diag *salesite.Diagnostics) (*salesite.ProductRecord, error) {
	if reply.Name == nil || strings.TrimSpace(*reply.Name) == "" {
		return nil, salesite.Errorf(salesite.EINVALID, "model reply missing product name")
	}
	if reply.ImageURL == nil || !salesite.IsAbsoluteHTTPURL(*reply.ImageURL) {
		return nil, salesite.Errorf(salesite.EINVALID, "model reply missing usable image URL")
	}
	if reply.SalePrice == nil || *reply.SalePrice <= 0 {
		return nil, salesite.Errorf(salesite.EINVALID, "model reply missing sale price")
	}
	if host := salesite.PlaceholderImageHost(*reply.ImageURL); host != "" {
		return nil, salesite.Errorf(salesite.EINVALID, "image URL is a placeholder (%s)", host)
	}

	confidence := defaultConfidence
	if reply.Confidence != nil {
		confidence = clamp(*reply.Confidence, 0, 100)
	}

	record := &salesite.ProductRecord{
		Name:      strings.TrimSpace(*reply.Name),
		ImageURL:  *reply.ImageURL,
		SalePrice: *reply.SalePrice,
		URL:       pageURL,
	}

	adjust := func(reason string, penalty, floor int) {
		after := confidence - penalty
		if after < floor {
			after = floor
		}
		// A floor never raises an already-lower confidence.
		if after > confidence {
			after = confidence
		}
		if diag != nil {
			diag.Adjustments = append(diag.Adjustments, salesite.ConfidenceAdjustment{
				Reason: reason,
				Delta:  after - confidence,
				After:  after,
			})
		}
		confidence = after
	}

	switch {
	case reply.OriginalPrice != nil && *reply.OriginalPrice <= record.SalePrice:
		// Inverted or equal price pair: drop the claimed original price.
		record.OriginalPrice = nil
		record.PercentOff = 0
		adjust("original price not above sale price", penaltyPriceOrder, floorPriceOrder)
	case reply.OriginalPrice != nil:
		original := *reply.OriginalPrice
		record.OriginalPrice = &original
		record.PercentOff = salesite.PercentOff(original, record.SalePrice)
		if reply.PercentOff != nil && abs(*reply.PercentOff-record.PercentOff) > 2 {
			adjust("reported percent off disagrees with prices", penaltyPercentOff, floorPercentOff)
		}
	}

	matched, checked, found := PriceInHTML(rawHTML, record.SalePrice)
	if diag != nil {
		diag.VariantsChecked = checked
		diag.VariantMatched = matched
		diag.PriceFound = found
	}
	if !found {
		adjust("sale price not present in page source", penaltyPriceAbsent, floorPriceAbsent)
	}

	record.Confidence = confidence
	if confidence < RejectThreshold && !opts.Diagnostics {
		return nil, salesite.Errorf(salesite.EINVALID, "extraction confidence %d below threshold %d", confidence, RejectThreshold)
	}
	return record, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
