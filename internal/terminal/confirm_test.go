package terminal

import (
	"strings"
	"testing"
)

func TestConfirmFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase yes", "y\n", true},
		{"uppercase yes", "Y\n", true},
		{"yes with whitespace", "  y  \n", true},
		{"lowercase no", "n\n", false},
		{"uppercase no", "N\n", false},
		{"empty input", "\n", false},
		{"full word yes is not enough", "yes\n", false},
		{"arbitrary text", "delete it\n", false},
		{"eof without input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got := confirmFrom(strings.NewReader(tt.input), &out, "Delete?")
			if got != tt.want {
				t.Errorf("confirmFrom(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Errorf("prompt output %q missing [y/N] hint", out.String())
			}
		})
	}
}
