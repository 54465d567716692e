// Package slugs builds URL slugs for states and districts.
package slugs

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// From converts a display name such as "Karbi Anglong" or "Bishnupur"
// into a lowercase ASCII slug ("karbi-anglong", "bishnupur"). Accents
// are stripped; every other non-alphanumeric run becomes one hyphen.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	out = strings.ToLower(out)
	out = nonAlphanumeric.ReplaceAllString(out, "-")
	out = multiHyphen.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// Valid reports whether s is already in the form From produces.
func Valid(s string) bool {
	return s != "" && From(s) == s
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
