package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

// datePattern matches D/M/Y with 1–2 digit day and month, 2 or 4 digit year,
// and any of the separators OCR tends to produce.
var datePattern = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{2,4})\b`)

// detectDate finds the first plausible document date and normalizes it to
// YYYY-MM-DD. Two-digit years are promoted into the 2000s. A month above 12
// with a day of 12 or less is treated as an ambiguous US-style ordering and
// the two are swapped; candidates still out of bounds after that are
// skipped, including years outside 2020–2030.
func detectDate(text string) (string, bool) {
	for _, m := range datePattern.FindAllStringSubmatch(text, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		if year < 100 {
			year += 2000
		}
		if month > 12 && day <= 12 {
			day, month = month, day
		}
		if month < 1 || month > 12 || day < 1 || day > 31 || year < 2020 || year > 2030 {
			continue
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}
	return "", false
}
