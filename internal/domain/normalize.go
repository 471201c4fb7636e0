package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// FoldText is NormalizeText with diacritics removed ("Concluído" -> "concluido").
func FoldText(text string) string {
	text = NormalizeText(text)
	if text == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

// NormalizeEmail trims and lower-cases an e-mail address. It performs no
// validation; see IsPlausibleEmail.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsPlausibleEmail reports whether s is non-empty and contains an '@'.
func IsPlausibleEmail(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && strings.Contains(s, "@")
}
