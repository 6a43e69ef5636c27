package jptext

import (
	"testing"
	"testing/quick"
)

func TestWhitespace(t *testing.T) {
	tests := []struct {
		input     string
		removed   string
		normalize string
		trimmed   string
	}{
		{"", "", "", ""},
		{"　　あいう　　", "あいう", "  あいう  ", "あいう"},
		{" a\tb\nc\r\v\f", "abc", " a\tb\nc\r\v\f", "a\tb\nc"},
		{"あ　い う", "あいう", "あ い う", "あ　い う"},
		{"\u00a0x\u00a0", "\u00a0x\u00a0", "\u00a0x\u00a0", "\u00a0x\u00a0"},
		{"　 \t\n", "", "  \t\n", ""},
	}
	for _, tt := range tests {
		if got := RemoveWhitespace(tt.input); got != tt.removed {
			t.Errorf("RemoveWhitespace(%q) = %q, want %q", tt.input, got, tt.removed)
		}
		if got := NormalizeWhitespace(tt.input); got != tt.normalize {
			t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.normalize)
		}
		if got := TrimWhitespace(tt.input); got != tt.trimmed {
			t.Errorf("TrimWhitespace(%q) = %q, want %q", tt.input, got, tt.trimmed)
		}
	}
}

func TestWhitespaceIdempotent(t *testing.T) {
	f := func(s string) bool {
		trimmed := TrimWhitespace(s)
		removed := RemoveWhitespace(s)
		return TrimWhitespace(trimmed) == trimmed && RemoveWhitespace(removed) == removed
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
