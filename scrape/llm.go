// Package scrape orchestrates the product-page extraction pipeline: fetch,
// structured-data extraction, relevance reduction, one LLM completion call,
// and confidence scoring, plus the sequential batch coordinator with its
// per-batch domain circuit breaker.
package scrape

import (
	"encoding/json"
	"fmt"
	"strings"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

// systemInstruction is the fixed contract for the single completion call.
// The reply must be one JSON object matching the schema below.
const systemInstruction = `You extract product sale data from e-commerce page HTML.

Price rules:
- Pages often render a price pair: the current sale price next to a crossed-out original price. Watch for markup like "compare-at", "was-price", "price__regular", <del> and <s> elements, and data-price attributes.
- JSON embedded in pages frequently expresses prices in minor currency units (cents). An integer price field like 4500 for a ~$45 product means 45.00; divide by 100.
- originalPrice must be strictly greater than salePrice. If the page shows no higher original price, set originalPrice to null and percentOff to 0.
- Never invent a price that does not appear in the HTML.

Image rules:
- imageUrl must be an absolute http(s) URL of the actual product photo.
- Never return a placeholder image (placeholder.com, placehold.co, dummyimage.com, and similar).

Reply with a single JSON object and nothing else:
{"name": string, "imageUrl": string, "originalPrice": number or null, "salePrice": number, "percentOff": integer, "confidence": integer}

Confidence rubric (0-100):
- 90+: unambiguous price pair or a single clearly-marked product price.
- 70-89: price found with minor ambiguity (several candidates, derived values).
- 50-69: weak signal, price inferred from context.
- below 50: unreliable; report low confidence instead of guessing.`

// buildPrompt assembles the user prompt from the reduced HTML and, when
// available, the pre-extracted preview image hint.
func buildPrompt(url string, reducedHTML string, imageHint string) string {
	var sb strings.Builder
	sb.WriteString("Extract the product sale data from this page.\n\n")
	fmt.Fprintf(&sb, "URL: %s\n\n", url)
	if imageHint != "" {
		fmt.Fprintf(&sb, "The page metadata already names a preview image; use it unless the HTML clearly shows a better product photo: %s\n\n", imageHint)
	}
	sb.WriteString("HTML:\n")
	sb.WriteString(reducedHTML)
	return sb.String()
}

// llmReply mirrors the reply schema. Pointer fields distinguish absent
// fields from zero values so the scorer can reject incomplete replies
// instead of trusting defaults.
type llmReply struct {
	Name          *string  `json:"name"`
	ImageURL      *string  `json:"imageUrl"`
	OriginalPrice *float64 `json:"originalPrice"`
	SalePrice     *float64 `json:"salePrice"`
	PercentOff    *int     `json:"percentOff"`
	Confidence    *int     `json:"confidence"`
}

// parseReply parses the model reply after stripping any code-fence
// wrapping. A parse failure is terminal for this URL; the pipeline does
// not retry the completion.
func parseReply(text string) (*llmReply, error) {
	cleaned := stripCodeFence(text)
	var reply llmReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, salesite.Errorf(salesite.EINVALID, "model reply is not valid JSON: %v", err)
	}
	return &reply, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or
// without a language tag.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 && !strings.HasPrefix(s, "{") {
		// Drop a language tag like "json" on the opening fence line.
		s = s[idx+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
