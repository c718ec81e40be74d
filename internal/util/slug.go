package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9 -]`)
	slugSpaces     = regexp.MustCompile(`\s+`)
	slugDashes     = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from a title.
// "Đồ án Tốt nghiệp 2024!" -> "do-an-tot-nghiep-2024"
func Slugify(value string) string {
	if value == "" {
		return ""
	}

	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), value)
	if err != nil {
		folded = value
	}
	// đ/Đ carry no combining mark, so NFKD leaves them alone
	folded = strings.NewReplacer("đ", "d", "Đ", "D").Replace(folded)

	s := strings.ToLower(strings.TrimSpace(folded))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
