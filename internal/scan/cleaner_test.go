package scan

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCleanTextNormalizesWhitespace(t *testing.T) {
	in := "  MERCADONA   S.A.  \n\n\n\n  TOTAL\t 45,80  \n"
	got := cleanText(in)
	want := "MERCADONA S.A.\n\nTOTAL 45,80"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanTextStripsArtifacts(t *testing.T) {
	got := cleanText("CAF� BAR�� ©2026")
	if strings.ContainsAny(got, "�©") {
		t.Fatalf("artifacts survived: %q", got)
	}
}

func TestCleanTextTruncatesAtLineBoundary(t *testing.T) {
	line := strings.Repeat("x", 99) + "\n"
	in := strings.Repeat(line, 60) // 6000 chars
	got := cleanText(in)
	if len(got) > maxTextLength {
		t.Fatalf("text not capped: %d chars", len(got))
	}
	if strings.HasSuffix(got, "\n") || !strings.HasSuffix(got, strings.Repeat("x", 99)) {
		t.Fatalf("truncation did not land on a line boundary: ...%q", got[len(got)-10:])
	}
}

func TestCleanTextTruncationKeepsValidUTF8(t *testing.T) {
	// One giant line of three-byte runes: no newline to cut at, and the
	// byte cap is not a multiple of three, so a naive byte cut lands
	// mid-rune.
	in := strings.Repeat("€", 2000) // 6000 bytes
	got := cleanText(in)
	if len(got) > maxTextLength {
		t.Fatalf("text not capped: %d bytes", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8 at the tail: %q", got[len(got)-4:])
	}
}

func TestCleanTextEmptyInput(t *testing.T) {
	if got := cleanText(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
