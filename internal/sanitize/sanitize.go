package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Text collapses runs of whitespace in scraped text, trims it and normalizes it to NFC
func Text(s string) string {
	return norm.NFC.String(strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " ")))
}
