package internal

import (
	"strconv"
)

// ParseArrayIndex parses an optionally negative decimal integer.
// Signs other than a single leading '-', blanks, and values that overflow
// int are rejected.
func ParseArrayIndex(token string) (int, bool) {
	// Fast path for single digit
	if len(token) == 1 && token[0] >= '0' && token[0] <= '9' {
		return int(token[0] - '0'), true
	}

	digits := token
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return index, true
}

// IsNonNegativeIndex reports whether token reads as an index >= 0.
func IsNonNegativeIndex(token string) bool {
	index, ok := ParseArrayIndex(token)
	return ok && index >= 0
}

// NormalizeIndex normalizes array index, handling negative indices.
// The result may still be negative when -index exceeds length.
func NormalizeIndex(index, length int) int {
	if index < 0 {
		return length + index
	}
	return index
}

// InBounds reports whether index addresses an existing element.
func InBounds(index, length int) bool {
	return index >= 0 && index < length
}
