package extract

import "regexp"

// Invoice number patterns, in decreasing order of confidence. The first
// class that matches anywhere in the text wins.
var (
	// "Factura Nº FA-2026-00123", "Ticket: 0012345", "Ref A99871"
	numberLabeled = regexp.MustCompile(`(?i)\b(?:invoice|factura|fra|ticket|nº|n°|num|receipt|ref)\.?\s*:?\s*#?\s*([A-Za-z0-9][A-Za-z0-9/-]{4,})`)
	// "FA123456", "T0098123"
	numberBare = regexp.MustCompile(`\b[A-Z]{1,4}\d{6,}\b`)
	// "F-2026", "AB/1234"
	numberSeparated = regexp.MustCompile(`\b[A-Z]{1,3}[-/]\d{3,}\b`)
)

// detectInvoiceNumber tries the label-prefixed token first, then the bare
// letters-plus-digits shape, then the short letters-separator-digits shape.
func detectInvoiceNumber(text string) (string, bool) {
	if m := numberLabeled.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := numberBare.FindString(text); m != "" {
		return m, true
	}
	if m := numberSeparated.FindString(text); m != "" {
		return m, true
	}
	return "", false
}
