package bio

import (
	"regexp"
	"strings"

	"github.com/biisimvar/profile-wizard/internal/sanitize"
)

// spellingFixes maps common misspellings and colloquialisms to their
// standard forms before the text reaches the model. Heuristic, not exact.
var spellingFixes = []struct {
	from *regexp.Regexp
	to   string
}{
	{regexp.MustCompile(`(?i)yapıyom`), "yaparım"},
	{regexp.MustCompile(`(?i)çalışıyom`), "çalışırım"},
	{regexp.MustCompile(`(?i)restorantta`), "restoranda"},
	{regexp.MustCompile(`(?i)restoranta`), "restorana"},
	{regexp.MustCompile(`(?i)restorant`), "restoran"},
	{regexp.MustCompile(`(?i)ocak başı`), "ocakbaşı"},
	{regexp.MustCompile(`(?i)kurye lik`), "kuryelik"},
}

// superlatives are subjective words that the rewrite must not carry.
var superlatives = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"çok", "mükemmel", "süper", "harika",
		"uzman", "lider", "tutkuluyum", "severim", "seviyorum",
	} {
		superlatives[sanitize.Normalize(w)] = struct{}{}
	}
}

var (
	letterWordRe    = regexp.MustCompile(`\p{L}+`)
	multiSpaceRe    = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforePunc = regexp.MustCompile(`\s+([.,;!?])`)
)

// ApplyCorrections runs the deterministic spelling and colloquialism
// substitutions against the input.
func ApplyCorrections(text string) string {
	for _, fix := range spellingFixes {
		text = fix.from.ReplaceAllString(text, fix.to)
	}
	return text
}

// Neutralize drops subjective superlative words from the model output and
// tidies the surrounding whitespace and punctuation.
func Neutralize(text string) string {
	text = letterWordRe.ReplaceAllStringFunc(text, func(word string) string {
		if _, banned := superlatives[sanitize.Normalize(word)]; banned {
			return ""
		}
		return word
	})
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = spaceBeforePunc.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// StripWrappingQuotes removes quote characters the model sometimes wraps
// around the whole reply.
func StripWrappingQuotes(text string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(text), "\"'`“”‘’«»"))
}

// redundantPairs lists sentence patterns that say the same thing twice; when
// both match, the sentence matching dup is dropped.
var redundantPairs = []struct {
	keep *regexp.Regexp
	dup  *regexp.Regexp
}{
	{
		keep: regexp.MustCompile(`(?i)yoğun saatlerde çalışmaya alışığım`),
		dup:  regexp.MustCompile(`(?i)yoğun saatlerde (?:de )?çalıştım`),
	},
	{
		keep: regexp.MustCompile(`(?i)müşterilerle iyi iletişim kurarım`),
		dup:  regexp.MustCompile(`(?i)müşteri iletişimim iyidir`),
	},
}

// MergeRedundantPairs removes sentences already covered by a stronger
// phrasing elsewhere in the text. Best effort only.
func MergeRedundantPairs(text string) string {
	for _, pair := range redundantPairs {
		if !pair.keep.MatchString(text) || !pair.dup.MatchString(text) {
			continue
		}
		sentences := SplitSentences(text)
		kept := make([]string, 0, len(sentences))
		for _, s := range sentences {
			if pair.dup.MatchString(s) && !pair.keep.MatchString(s) {
				continue
			}
			kept = append(kept, s)
		}
		text = strings.Join(kept, ". ")
		if text != "" && !strings.HasSuffix(text, ".") {
			text += "."
		}
	}
	return text
}
