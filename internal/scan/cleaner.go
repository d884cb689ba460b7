package scan

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxTextLength = 5000

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// ocrArtifacts are replacement-character runs and symbols tesseract
// tends to invent on low-contrast scans.
var ocrArtifacts = []string{"��", "�", "©", "™", "®"}

// cleanText normalizes raw OCR output before field extraction: trims
// per-line whitespace, collapses blank-line runs, strips artifacts and
// caps the length at a line boundary.
func cleanText(raw string) string {
	if raw == "" {
		return raw
	}

	text := raw
	for _, artifact := range ocrArtifacts {
		text = strings.ReplaceAll(text, artifact, "")
	}

	text = spaceRun.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	if len(text) > maxTextLength {
		cut := text[:maxTextLength]
		if i := strings.LastIndex(cut, "\n"); i > 0 {
			cut = cut[:i]
		} else {
			// No line boundary in range; back off the byte cut so it does
			// not land inside a multi-byte rune.
			for len(cut) > 0 && !utf8.RuneStart(cut[len(cut)-1]) {
				cut = cut[:len(cut)-1]
			}
			if r, size := utf8.DecodeLastRuneInString(cut); r == utf8.RuneError && size <= 1 {
				cut = cut[:len(cut)-size]
			}
		}
		text = cut
	}
	return text
}
