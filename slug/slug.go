// Package slug turns titles into URL-safe tokens and resolves collisions.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultLocale is the site locale used by Generate.
var DefaultLocale = language.BrazilianPortuguese

// letters with no decomposition that NFD would otherwise drop
var transliterations = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"ł", "l",
	"đ", "d",
	"ð", "d",
	"þ", "th",
)

// removed without leaving a separator, so "don't" becomes "dont"
const quotes = "'\"`´‘’“”«»"

type Generator struct {
	locale language.Tag
}

func NewGenerator(locale language.Tag) Generator {
	return Generator{locale: locale}
}

// Generate uses DefaultLocale.
func Generate(title string) string {
	return NewGenerator(DefaultLocale).Generate(title)
}

// Generate returns a token matching ^[a-z0-9]+(-[a-z0-9]+)*$, or "" when
// the title has no usable characters. It is idempotent.
func (g Generator) Generate(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	s := cases.Lower(g.locale).String(title)
	s = transliterations.Replace(s)
	s = removeAccents(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case strings.ContainsRune(quotes, r):
		default:
			pendingDash = true
		}
	}
	return b.String()
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// EnsureUnique returns candidate when it is not taken, otherwise the first
// free candidate-1, candidate-2, ...
func EnsureUnique(candidate string, existing map[string]struct{}) string {
	return EnsureUniqueFunc(candidate, func(s string) bool {
		_, ok := existing[s]
		return ok
	})
}

// EnsureUniqueFunc is EnsureUnique over an arbitrary oracle. It terminates as
// long as taken reports true for finitely many tokens.
func EnsureUniqueFunc(candidate string, taken func(string) bool) string {
	if !taken(candidate) {
		return candidate
	}
	for i := 1; ; i++ {
		next := candidate + "-" + strconv.Itoa(i)
		if !taken(next) {
			return next
		}
	}
}
