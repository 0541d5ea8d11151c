// Package sanitize normalizes untrusted form input before validation and
// before it is interpolated into outbound email.
package sanitize

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

// Text trims surrounding whitespace, drops control characters (except
// newline and tab in multi-line input) and escapes markup.
func Text(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return html.EscapeString(s)
}

var lineBreakRuns = regexp.MustCompile(`[\r\n\t]+`)

// Line is Text for single-line fields: each run of newlines and tabs
// collapses to one space so a field value can never inject extra mail
// headers.
func Line(s string) string {
	s = lineBreakRuns.ReplaceAllString(s, " ")
	return Text(s)
}
