package jsonptr

import (
	"github.com/cybergodev/jsonptr/internal"
)

// ParsePointer turns a JSON Pointer into unescaped reference tokens.
//
// "" and "/" address the root and yield no tokens. The leading slash is
// optional and empty tokens produced by repeated slashes are dropped, so
// "//a//b", "/a/b" and "a/b" are the same pointer. Tokens are unescaped per
// RFC 6901: "~1" becomes "/" and "~0" becomes "~". Parsing never fails; a
// token that names nothing simply fails to resolve later.
func ParsePointer(pointer string) []string {
	raw := internal.SplitPointer(pointer)
	if len(raw) == 0 {
		return nil
	}

	tokens := make([]string, len(raw))
	for i, token := range raw {
		tokens[i] = internal.UnescapeToken(token)
	}
	return tokens
}

// FormatPointer builds a pointer from unescaped tokens. It is the inverse of
// ParsePointer for tokens that are not empty.
func FormatPointer(tokens ...string) string {
	return internal.JoinTokens(tokens)
}

// EscapeToken escapes "~" and "/" in a single token
func EscapeToken(token string) string {
	return internal.EscapeToken(token)
}
