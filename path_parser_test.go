package jsonptr

import (
	"testing"
)

func TestParsePointer(t *testing.T) {
	helper := NewTestHelper(t)

	tests := []struct {
		name    string
		pointer string
		want    []string
	}{
		{"EmptyIsRoot", "", nil},
		{"SlashIsRoot", "/", nil},
		{"Single", "/a", []string{"a"}},
		{"Nested", "/a/b/2/c", []string{"a", "b", "2", "c"}},
		{"NoLeadingSlash", "a/b", []string{"a", "b"}},
		{"RepeatedSlashesDropped", "//a//b/", []string{"a", "b"}},
		{"OnlySlashes", "///", nil},
		{"EscapedSlash", "/a~1b", []string{"a/b"}},
		{"EscapedTilde", "/a~0b", []string{"a~b"}},
		{"TildeZeroOneIsTildeOne", "/~01", []string{"~1"}},
		{"TildeOneZero", "/~10", []string{"/0"}},
		{"LoneTildeKept", "/a~b~", []string{"a~b~"}},
		{"NegativeIndexToken", "/items/-1", []string{"items", "-1"}},
		{"SpacesKept", "/ a /b ", []string{" a ", "b "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePointer(tt.pointer)
			if len(tt.want) == 0 {
				helper.AssertEqual(0, len(got), "pointer %q should address the root", tt.pointer)
				return
			}
			helper.AssertEqual(tt.want, got, "pointer %q", tt.pointer)
		})
	}
}

func TestFormatPointer(t *testing.T) {
	helper := NewTestHelper(t)

	helper.AssertEqual("", FormatPointer())
	helper.AssertEqual("/a/0", FormatPointer("a", "0"))
	helper.AssertEqual("/a~1b/c~0d", FormatPointer("a/b", "c~d"))
	helper.AssertEqual("~01", EscapeToken("~1"))

	t.Run("RoundTrip", func(t *testing.T) {
		tokens := []string{"x/y", "~", "~1", "plain", "0"}
		helper.AssertEqual(tokens, ParsePointer(FormatPointer(tokens...)))
	})
}
