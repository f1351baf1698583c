package frequency

import (
	"strconv"
	"strings"
	"unicode"
)

// StripPunctuation replaces every rune that is not a letter, digit,
// underscore, whitespace or Han ideograph with a space.
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if IsWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)
}

// IsWordRune reports whether r can be part of a word token.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || IsHan(r)
}

// IsHan reports whether r is a CJK ideograph.
func IsHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// IsNumeric reports whether tok parses entirely as a number.
// Tokens without a digit ("inf", "NaN") are not numeric.
func IsNumeric(tok string) bool {
	if !strings.ContainsFunc(tok, unicode.IsDigit) {
		return false
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}
