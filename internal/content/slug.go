package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRun  = regexp.MustCompile(`-{2,}`)
	slugSeparators = strings.NewReplacer(" ", "-", "_", "-", "/", "-", ":", "-")
)

// Slugify converts a title into a URL path segment: accents are removed,
// letters lower-cased, separators turned into hyphens and everything else dropped.
func Slugify(s string) string {
	// transformers are stateful, build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	out = strings.ToLower(out)
	out = slugSeparators.Replace(out)
	out = slugInvalid.ReplaceAllString(out, "")
	out = slugHyphenRun.ReplaceAllString(out, "-")

	return strings.Trim(out, "-")
}
