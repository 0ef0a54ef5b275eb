package errors

import (
	"strings"
	"testing"
)

func TestValidateValueText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantMsg string
	}{
		{"positive", "42", false, ""},
		{"negative", "-7", false, ""},
		{"padded", "  5 ", false, ""},

		{"empty", "", true, "Enter a number"},
		{"blank", "   ", true, "Enter a number"},
		{"inner space", "1 2", true, "Invalid integer"},
		{"control char", "4\x01", true, "Invalid integer"},
		{"too long", strings.Repeat("9", 40), true, "Invalid integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValueText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateValueText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && UserMessage(err) != tt.wantMsg {
				t.Errorf("UserMessage() = %q, want %q", UserMessage(err), tt.wantMsg)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/tree.svg", false},
		{"absolute", "/tmp/tree.svg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "tree\x00.svg", true},
		{"newline", "tree\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
