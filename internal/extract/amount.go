package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numPat matches a money-looking number with exactly two fraction digits,
// tolerating both "1.234,56" and "1,234.56" plus the plain "1234.56".
const numPat = `\d{1,3}(?:[.,]\d{3})+[.,]\d{2}|\d+[.,]\d{2}`

var (
	totalWord       = regexp.MustCompile(`(?i)\btotal\b`)
	moneyNumber     = regexp.MustCompile(numPat)
	// Label and amount must sit on the same line: only horizontal
	// whitespace between them, or a figure at the end of one line would
	// pair up with a "TOTAL" opening the next.
	totalLabeled    = regexp.MustCompile(`(?i)\b(?:importe[ \t]+total|total|a[ \t]+pagar|amount[ \t]+due)[ \t]*:?[ \t]*(?:€[ \t]*)?(` + numPat + `)`)
	amountThenTotal = regexp.MustCompile(`(?i)(` + numPat + `)[ \t]*(?:€|eur)?[ \t]*(?:total|a[ \t]+pagar)`)
	currencyAfter   = regexp.MustCompile(`(` + numPat + `)[ \t]*(?:€|(?i:eur)\b)`)
	currencyBefore  = regexp.MustCompile(`(?:€|(?i:eur))[ \t]*(` + numPat + `)`)
	trailingNumber  = regexp.MustCompile(`(` + numPat + `)\s*$`)
)

var (
	minTotal    = decimal.RequireFromString("0.5")
	maxTotal    = decimal.NewFromInt(100000)
	minFallback = decimal.NewFromInt(1)
	maxFallback = decimal.NewFromInt(50000)
)

// detectAmount finds the invoice total. Tier one trusts lines carrying the
// word "total" and the explicit total/a-pagar label patterns; tier two falls
// back to currency-tagged or line-trailing figures anywhere in the text.
// Both tiers resolve ambiguity by taking the maximum candidate: OCR tends to
// pick up subtotals and line items, and the grand total is normally the
// largest currency figure on the document.
func detectAmount(lines []string, text string) (decimal.Decimal, bool) {
	var candidates []decimal.Decimal

	for _, line := range lines {
		if !totalWord.MatchString(line) {
			continue
		}
		for _, raw := range moneyNumber.FindAllString(line, -1) {
			if d, ok := parseMoney(raw); ok && inRange(d, minTotal, maxTotal) {
				candidates = append(candidates, d)
			}
		}
	}
	for _, re := range []*regexp.Regexp{totalLabeled, amountThenTotal} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if d, ok := parseMoney(m[1]); ok && inRange(d, minTotal, maxTotal) {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) > 0 {
		return maxOf(candidates), true
	}

	// Weaker signal: any number glued to a currency marker, or left
	// dangling at the end of a line the way receipt columns print prices.
	for _, re := range []*regexp.Regexp{currencyAfter, currencyBefore} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if d, ok := parseMoney(m[1]); ok && inRange(d, minFallback, maxFallback) {
				candidates = append(candidates, d)
			}
		}
	}
	for _, line := range lines {
		if m := trailingNumber.FindStringSubmatch(strings.TrimRight(line, " \t\r")); m != nil {
			if d, ok := parseMoney(m[1]); ok && inRange(d, minFallback, maxFallback) {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) > 0 {
		return maxOf(candidates), true
	}
	return decimal.Zero, false
}

// parseMoney normalizes a matched number to a decimal: the last separator is
// the decimal point, anything before it is a thousands separator. Unparseable
// matches are dropped from the candidate set rather than reported.
func parseMoney(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	last := strings.LastIndexAny(s, ".,")
	if last < 0 {
		return decimal.Zero, false
	}
	intPart := strings.Map(func(r rune) rune {
		if r == '.' || r == ',' {
			return -1
		}
		return r
	}, s[:last])
	d, err := decimal.NewFromString(intPart + "." + s[last+1:])
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// inRange reports lo < d < hi, both bounds exclusive.
func inRange(d, lo, hi decimal.Decimal) bool {
	return d.GreaterThan(lo) && d.LessThan(hi)
}

func maxOf(ds []decimal.Decimal) decimal.Decimal {
	max := ds[0]
	for _, d := range ds[1:] {
		if d.GreaterThan(max) {
			max = d
		}
	}
	return max
}

func minOf(ds []decimal.Decimal) decimal.Decimal {
	min := ds[0]
	for _, d := range ds[1:] {
		if d.LessThan(min) {
			min = d
		}
	}
	return min
}
