// Package budget implements the monetary extraction pass over chat text and
// the locally persisted per-team totals.
package budget

import (
	"regexp"
	"strconv"
)

// amountPattern matches "<number>(.fraction)? <marker>" where the marker is
// one of the recognized currency words or the $ sigil. The scan is a plain
// left-to-right non-overlapping pass, so the same text always yields the
// same matches and the same sum.
var amountPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:dólares|dolares|dollars|usd|\$|pesos|euros)`)

// Extract sums the numeric component of every currency mention in text.
// No mentions means zero; there is no subtraction path.
func Extract(text string) float64 {
	var total float64
	for _, m := range amountPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		total += v
	}
	return total
}
