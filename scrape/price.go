package scrape

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PriceVariants returns the plausible textual renderings of a price as it
// might appear in page source: two-decimal, whole-dollar, comma-grouped
// thousands, minor-unit integer, and locale decimal-comma forms.
// Duplicates are removed; order is stable.
func PriceVariants(price float64) []string {
	if price <= 0 {
		return nil
	}

	twoDecimal := fmt.Sprintf("%.2f", price)
	intPart, fracPart, _ := strings.Cut(twoDecimal, ".")
	grouped := groupThousands(intPart)

	variants := []string{
		twoDecimal,                          // 1299.99
		grouped + "." + fracPart,            // 1,299.99
		intPart + "," + fracPart,            // 1299,99
		groupDots(intPart) + "," + fracPart, // 1.299,99
	}
	if fracPart == "00" {
		variants = append(variants, intPart, grouped) // 1299 / 1,299
	}
	variants = append(variants, strconv.FormatInt(int64(math.Round(price*100)), 10)) // 129999

	seen := make(map[string]struct{}, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// PriceInHTML tests each variant rendering of price against the raw HTML.
// It returns the first matching variant, the full list checked, and whether
// any matched. This is the hallucination guard's source-of-truth check.
func PriceInHTML(html string, price float64) (matched string, checked []string, found bool) {
	checked = PriceVariants(price)
	for _, variant := range checked {
		if strings.Contains(html, variant) {
			return variant, checked, true
		}
	}
	return "", checked, false
}

// groupThousands inserts comma thousands separators into a digit string.
func groupThousands(digits string) string {
	return groupWith(digits, ',')
}

// groupDots inserts dot thousands separators (European grouping).
func groupDots(digits string) string {
	return groupWith(digits, '.')
}

func groupWith(digits string, sep byte) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var sb strings.Builder
	first := n % 3
	if first > 0 {
		sb.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
