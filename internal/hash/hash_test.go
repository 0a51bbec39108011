package hash

import (
	"strings"
	"testing"
)

func TestSHA1Hex(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "simple path", input: "/tmp/forest.jpg"},
		{name: "unicode path", input: "/tmp/壁纸/森林.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SHA1Hex(tt.input)
			if len(got) != 40 {
				t.Errorf("SHA1Hex(%q) length = %d, want 40", tt.input, len(got))
			}
		})
	}
}

func TestSHA1Hex_Deterministic(t *testing.T) {
	input := "same input"
	first := SHA1Hex(input)
	second := SHA1Hex(input)
	if first != second {
		t.Errorf("SHA1Hex not deterministic: %q != %q", first, second)
	}
}

func TestLocalFileIdentifier(t *testing.T) {
	id := LocalFileIdentifier("/tmp/forest.jpg")
	if !strings.HasPrefix(id, LocalIdentifierPrefix) {
		t.Errorf("LocalFileIdentifier missing prefix: %q", id)
	}
	if id == LocalFileIdentifier("/tmp/other.jpg") {
		t.Error("Different paths produced same identifier")
	}
}
