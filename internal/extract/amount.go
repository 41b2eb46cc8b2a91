package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches a number with an optional "Rp" marker before it and
// an optional magnitude word after it. The decimal separator may be a comma.
var amountPattern = regexp.MustCompile(`(?i)(?:rp\s*)?(\d+(?:[.,]\d+)?)\s*(ribu|juta|k|m)?`)

// reviewerPattern captures the two words following "dengan"/"by"/"oleh".
var reviewerPattern = regexp.MustCompile(`(?:dengan|by|oleh)\s+(\w+\s+\w+)`)

// Amount extracts the first monetary amount from the utterance, scaling by
// "ribu"/"k" (thousand) or "juta"/"m" (million). Zero means no amount was
// supplied; callers treat that as an unresolved entity, not a real value.
func Amount(utterance string) float64 {
	m := amountPattern.FindStringSubmatch(utterance)
	if m == nil {
		return 0
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0
	}
	switch strings.ToLower(m[2]) {
	case "juta", "m":
		amount *= 1_000_000
	case "ribu", "k":
		amount *= 1_000
	}
	return amount
}

// Reviewer extracts the reviewer name from a "dengan <nama>" / "oleh
// <nama>" / "by <name>" phrase. Empty when no such phrase is present.
func Reviewer(utterance string) string {
	m := reviewerPattern.FindStringSubmatch(strings.ToLower(utterance))
	if m == nil {
		return ""
	}
	return m[1]
}
