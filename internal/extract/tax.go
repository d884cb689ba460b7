package extract

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	taxWord    = regexp.MustCompile(`(?i)\b(?:iva|vat|tax|impuestos?)\b`)
	taxLabeled = regexp.MustCompile(`(?i)\b(?:iva|vat|tax|impuestos?)\b[^0-9\n]*(` + numPat + `)`)

	// Lines that carry a fiscal ID label, not an amount: "VAT number",
	// "NIF: B12345678". Their digits must never become a tax candidate.
	vatIDLine = regexp.MustCompile(`(?i)vat\s*(?:number|no\.?|id)|\bnif\b|\bcif\b`)
)

// detectTax finds the IVA/VAT amount. Candidates strictly below half the
// detected total are trusted and the maximum wins; when only larger
// candidates exist the minimum is taken as the least implausible value.
// With no candidates at all the tax is reverse-derived from the gross total
// at the standard 21% rate — an assumption the caller must surface, flagged
// by the second return value.
func detectTax(lines []string, amount decimal.Decimal) (decimal.Decimal, bool) {
	var candidates []decimal.Decimal

	for _, line := range lines {
		if !taxWord.MatchString(line) || vatIDLine.MatchString(line) {
			continue
		}
		for _, m := range taxLabeled.FindAllStringSubmatch(line, -1) {
			if d, ok := parseMoney(m[1]); ok && d.GreaterThan(decimal.Zero) {
				candidates = append(candidates, d)
			}
		}
		for _, raw := range moneyNumber.FindAllString(line, -1) {
			if d, ok := parseMoney(raw); ok && d.GreaterThan(decimal.Zero) {
				candidates = append(candidates, d)
			}
		}
	}

	if len(candidates) > 0 {
		half := amount.Div(decimal.NewFromInt(2))
		var plausible []decimal.Decimal
		for _, d := range candidates {
			if d.LessThan(half) {
				plausible = append(plausible, d)
			}
		}
		if len(plausible) > 0 {
			return maxOf(plausible), false
		}
		// Everything found is suspiciously large, likely a repeated total.
		// The smallest value is the weakest wrong answer.
		return minOf(candidates), false
	}

	if amount.GreaterThan(decimal.Zero) {
		return deriveTax(amount), true
	}
	return decimal.Zero, false
}

// deriveTax reverse-computes the tax portion of a gross total that has the
// standard rate baked in: amount × rate / (1 + rate), rounded to cents.
func deriveTax(amount decimal.Decimal) decimal.Decimal {
	rate := decimal.NewFromFloat(standardVATRate)
	return amount.Mul(rate).Div(decimal.NewFromInt(1).Add(rate)).Round(2)
}
