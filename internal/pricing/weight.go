package pricing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var weightNumber = regexp.MustCompile(`[\d.]+`)

// FormatWeightGrams renders a weight label for display: grams below a kilo as
// "500g", whole kilos as "1kg", fractional kilos with two decimals ("1.25kg").
func FormatWeightGrams(grams int) string {
	if grams < 1000 {
		return fmt.Sprintf("%dg", grams)
	}
	if grams%1000 == 0 {
		return fmt.Sprintf("%dkg", grams/1000)
	}
	return fmt.Sprintf("%.2fkg", float64(grams)/1000)
}

// ParseWeightKg parses labels like "250g", "500g", "1kg", "1.5kg" into
// kilograms. A bare number is taken as kilograms. Returns false for anything
// non-numeric or non-positive.
func ParseWeightKg(label string) (float64, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(label))
	if trimmed == "" {
		return 0, false
	}

	match := weightNumber.FindString(trimmed)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil || value <= 0 {
		return 0, false
	}

	if strings.Contains(trimmed, "kg") {
		return value, true
	}
	if strings.Contains(trimmed, "g") {
		return value / 1000, true
	}
	return value, true
}
