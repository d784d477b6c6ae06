package utils

import (
	"regexp"
	"strings"
)

// Completion models frequently wrap their JSON answers in markdown fences or
// surrounding prose. This file keeps the wrapper-stripping steps enumerable
// and independently testable.

var (
	fenceTagged = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.+?)\\s*```")
)

// StripCodeFence removes a leading/trailing fenced code block (with or
// without a language tag) and returns the inner text. Input without a fence
// is returned unchanged apart from whitespace trimming.
func StripCodeFence(input string) string {
	s := strings.TrimSpace(input)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if matches := fenceTagged.FindStringSubmatch(s); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	// Unterminated fence: drop the opening line only
	if idx := strings.Index(s, "\n"); idx >= 0 {
		return strings.TrimSpace(s[idx+1:])
	}
	return s
}

// ExtractJSONObject finds the first balanced JSON object in text that may
// carry surrounding prose. Returns "" when none is found.
func ExtractJSONObject(input string) string {
	if start := strings.Index(input, "{"); start >= 0 {
		return extractBalanced(input[start:], '{', '}')
	}
	return ""
}

// extractBalanced extracts content with balanced braces, honoring strings
// and escapes.
func extractBalanced(input string, open, close rune) string {
	depth := 0
	inString := false
	escape := false
	start := 0

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		if ch == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == close {
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}

	return ""
}

// StripLeadIn removes conversational prefixes models prepend to raw-text
// answers ("Here is ...", "Enhanced version: ...").
func StripLeadIn(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, prefix := range []string{"Here is", "Here's", "Enhanced description:", "Enhanced version:"} {
		if len(trimmed) >= len(prefix) && strings.EqualFold(trimmed[:len(prefix)], prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}
