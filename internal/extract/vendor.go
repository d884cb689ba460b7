package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// maxVendorLines caps how deep the vendor scan goes: on receipts the
// merchant name sits in the header, anything below line 15 is body noise.
const maxVendorLines = 15

var (
	// Structural lines that can never be a vendor name: labels, contact
	// data, document words. Matched against the start of the lowercased line.
	vendorDenyPrefix = regexp.MustCompile(`^(fecha|date|hora|time|total|iva|nif|cif|tel|fax|email|web|www|http|dir|invoice|factura|ticket|recibo)`)
	vendorDenyDate   = regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}`)
	pureDigits       = regexp.MustCompile(`^\d+$`)

	// Everything a vendor name may contain: letters (Spanish diacritics
	// included), spaces, hyphen, period, ampersand.
	vendorKeep = regexp.MustCompile(`[^a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s.&-]+`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// scanVendorLines is the fallback when no brand rule matched: walk the first
// non-empty lines of the receipt and return the first one that survives the
// structural filters. Returns "" when nothing qualifies.
func scanVendorLines(lines []string) string {
	seen := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		seen++
		if seen > maxVendorLines {
			break
		}

		if pureDigits.MatchString(trimmed) {
			continue
		}
		lowered := strings.ToLower(trimmed)
		if vendorDenyPrefix.MatchString(lowered) || vendorDenyDate.MatchString(lowered) {
			continue
		}

		cleaned := vendorKeep.ReplaceAllString(trimmed, "")
		cleaned = strings.TrimSpace(multiSpace.ReplaceAllString(cleaned, " "))

		runes := []rune(cleaned)
		if len(runes) < 2 || len(runes) > 60 {
			continue
		}
		if letterCount(cleaned) < 2 {
			continue
		}
		return cleaned
	}
	return ""
}

func letterCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
