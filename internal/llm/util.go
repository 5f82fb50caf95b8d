// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock normalizes a model reply that is supposed to be JSON.
// It removes markdown code-fence wrappers, conversational preamble before the
// first JSON value and trailing commentary after it. LLMs produce all three
// even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		// Handle generic ``` ... ``` blocks
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Cut whatever surrounds the first complete JSON value.
	objIdx := strings.IndexByte(text, '{')
	arrIdx := strings.IndexByte(text, '[')

	if objIdx >= 0 && (arrIdx < 0 || objIdx < arrIdx) {
		if v := extractJSONObject(text[objIdx:]); v != "" {
			return v
		}
	}
	if arrIdx >= 0 {
		if v := extractJSONArray(text[arrIdx:]); v != "" {
			return v
		}
	}

	return text
}

// extractJSONObject returns the balanced JSON object at the start of s, or
// an empty string when s does not begin with one.
func extractJSONObject(s string) string {
	return scanBalanced(s, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of s, or an
// empty string when s does not begin with one.
func extractJSONArray(s string) string {
	return scanBalanced(s, '[', ']')
}

// scanBalanced walks s counting open/close delimiters while skipping string
// literals and escape sequences.
func scanBalanced(s string, open, close byte) string {
	if len(s) == 0 || s[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}

	return ""
}
