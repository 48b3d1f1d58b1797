package internal

import (
	"strings"
)

// EscapeToken escapes a single reference token for use in a JSON Pointer.
// Uses single-pass algorithm to avoid multiple allocations
func EscapeToken(s string) string {
	// Fast path: check if escaping is needed
	if !strings.ContainsAny(s, "~/") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 4)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			sb.WriteString("~0")
		case '/':
			sb.WriteString("~1")
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// UnescapeToken decodes "~1" to "/" and "~0" to "~" in one left-to-right pass,
// so "~01" yields "~1" and never "/". A "~" followed by anything else is kept.
func UnescapeToken(s string) string {
	// Fast path: check if unescaping is needed
	if strings.IndexByte(s, '~') < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '~' && i+1 < len(s) {
			switch s[i+1] {
			case '0':
				sb.WriteByte('~')
				i++
			case '1':
				sb.WriteByte('/')
				i++
			default:
				sb.WriteByte(s[i])
			}
		} else {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// IsRootPointer reports whether the pointer addresses the whole document.
func IsRootPointer(pointer string) bool {
	return pointer == "" || pointer == "/"
}

// SplitPointer strips one leading slash, splits on "/" and drops empty raw
// tokens. The returned tokens are still escaped.
func SplitPointer(pointer string) []string {
	if IsRootPointer(pointer) {
		return nil
	}

	pointer = strings.TrimPrefix(pointer, "/")
	tokens := make([]string, 0, strings.Count(pointer, "/")+1)
	for _, raw := range strings.Split(pointer, "/") {
		if raw == "" {
			continue
		}
		tokens = append(tokens, raw)
	}
	return tokens
}

// JoinTokens builds a pointer from unescaped tokens.
func JoinTokens(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, token := range tokens {
		sb.WriteByte('/')
		sb.WriteString(EscapeToken(token))
	}
	return sb.String()
}
