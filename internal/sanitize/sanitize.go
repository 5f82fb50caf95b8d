// Package sanitize detects and masks profane or abusive Turkish words in
// untrusted text. Matching is independent of casing, Turkish diacritics and
// simple character-insertion obfuscation. Every user-supplied value is run
// through Clean before it reaches the LLM, and every value the LLM returns is
// run through it again.
package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mask replaces an entire banned word or obfuscated window.
const Mask = "***"

// bannedWords is the static banned-word list. Entries are normalized once at
// init; surface text is normalized the same way before lookup.
var bannedWords = []string{
	"amk",
	"amina",
	"amına",
	"amını",
	"orospu",
	"piç",
	"sic",
	"sıç",
	"sik",
	"sikerim",
	"sikeyim",
	"s.ktir",
	"s.kerim",
	"salak",
	"aptal",
	"gerizekali",
	"gerizekalı",
	"mal",
	"oç",
	"yarrak",
	"ibne",
	"top",
	"serefsiz",
	"şerefsiz",
	"kahpe",
}

var (
	turkishLower = cases.Lower(language.Turkish)

	// Diacritic folding applied after Turkish lowercasing. The combining-dot
	// sequence handles the dotted capital-I artifact produced by non-Turkish
	// case mappings.
	diacriticFolder = strings.NewReplacer(
		"ç", "c",
		"ğ", "g",
		"ı", "i",
		"i̇", "i",
		"ö", "o",
		"ş", "s",
		"ü", "u",
	)

	letterRun  = regexp.MustCompile(`\p{L}+`)
	nonLetters = regexp.MustCompile(`[^\p{L}]+`)

	// fuzzyWindow matches two to four letters with arbitrary non-letter
	// separators between them, e.g. "a.m.k" or "s-i-k".
	fuzzyWindow = regexp.MustCompile(`(\p{L})([^\p{L}]*)(\p{L})([^\p{L}]*)(\p{L})?([^\p{L}]*)(\p{L})?`)

	bannedSet      map[string]bool
	shortBannedSet map[string]bool
)

func init() {
	bannedSet = make(map[string]bool, len(bannedWords))
	shortBannedSet = make(map[string]bool)
	for _, w := range bannedWords {
		norm := Normalize(w)
		bannedSet[norm] = true
		if n := len([]rune(norm)); n >= 2 && n <= 6 {
			shortBannedSet[norm] = true
		}
	}
}

// Normalize lowercases text with Turkish collation rules and folds the six
// Turkish diacritic letters to their base Latin forms. Idempotent.
func Normalize(s string) string {
	return diacriticFolder.Replace(turkishLower.String(s))
}

// normalizeLettersOnly normalizes and keeps only letter characters.
func normalizeLettersOnly(s string) string {
	return nonLetters.ReplaceAllString(Normalize(s), "")
}

// Exact scans maximal runs of letters and masks each run whose normalized
// form is a banned word. Non-letter characters are left untouched. Returns
// the cleaned text and the distinct original surface forms that were masked,
// in order of first appearance.
func Exact(text string) (string, []string) {
	var replaced []string
	seen := make(map[string]bool)

	cleaned := letterRun.ReplaceAllStringFunc(text, func(word string) string {
		if !bannedSet[Normalize(word)] {
			return word
		}
		if !seen[word] {
			seen[word] = true
			replaced = append(replaced, word)
		}
		return Mask
	})

	return cleaned, replaced
}

// Fuzzy additionally catches short banned words (2-6 letters) with stray
// separator characters inserted between letters, e.g. "a.m.k". It scans
// windows of up to four letter-groups and masks the whole window when the
// letters-only concatenation is a banned word.
func Fuzzy(text string) (string, []string) {
	if len(shortBannedSet) == 0 {
		return text, nil
	}

	var matched []string
	cleaned := fuzzyWindow.ReplaceAllStringFunc(text, func(window string) string {
		letters := normalizeLettersOnly(window)
		if len([]rune(letters)) >= 2 && shortBannedSet[letters] {
			matched = append(matched, window)
			return Mask
		}
		return window
	})

	return cleaned, matched
}

// Clean runs the exact pass followed by the fuzzy pass and returns only the
// cleaned text. Never fails; always returns a string.
func Clean(text string) string {
	out, _ := Exact(text)
	out, _ = Fuzzy(out)
	return out
}

// Detect reports every banned surface form found in text by either pass
// without modifying it. Used by callers that reject instead of mask.
func Detect(text string) []string {
	cleaned, replaced := Exact(text)
	_, matched := Fuzzy(cleaned)
	return append(replaced, matched...)
}

// MentionsInsurance reports whether text refers to insurance or social
// security ("sigorta", "SGK"), in any casing or diacritic spelling.
func MentionsInsurance(text string) bool {
	if text == "" {
		return false
	}
	norm := Normalize(text)
	return strings.Contains(norm, "sigorta") || strings.Contains(norm, "sgk")
}
