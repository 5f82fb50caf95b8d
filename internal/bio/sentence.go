// Package bio turns a raw jobseeker biography into a polished Turkish
// rewrite with deterministic guardrails around the LLM call.
package bio

import (
	"regexp"
	"strings"
)

var (
	sentenceEndRe = regexp.MustCompile(`[.!?;\n]+`)
	rushRe        = regexp.MustCompile(`(?i)(?:yoğun|kalabalık|pik|rush)`)
)

// SplitSentences splits text on sentence-ending punctuation and newlines,
// returning the trimmed non-empty parts.
func SplitSentences(text string) []string {
	parts := sentenceEndRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CountSentences approximates the number of sentences in text. A non-empty
// text always counts as at least one sentence.
func CountSentences(text string) int {
	n := len(SplitSentences(text))
	if n == 0 {
		return 1
	}
	return n
}

// TargetRange derives the desired output sentence range from the input
// sentence count.
func TargetRange(n int) (min, max int) {
	switch {
	case n <= 3:
		return 2, 3
	case n <= 5:
		return 3, 4
	case n <= 8:
		return 4, 6
	default:
		return 5, 8
	}
}

// EnforceSentenceCap truncates text after its k-th sentence. Text with k or
// fewer sentences is returned unchanged.
func EnforceSentenceCap(text string, k int) string {
	if k < 1 {
		return text
	}

	ends := sentenceEndRe.FindAllStringIndex(text, -1)
	seen := 0
	prev := 0
	for _, end := range ends {
		if strings.TrimSpace(text[prev:end[0]]) != "" {
			seen++
			if seen == k && strings.TrimSpace(text[end[1]:]) != "" {
				return strings.TrimSpace(text[:end[1]])
			}
		}
		prev = end[1]
	}

	return text
}

// MentionsRush reports whether the text references busy or rush-hour work.
func MentionsRush(text string) bool {
	return rushRe.MatchString(text)
}
