package validation

import (
	"strings"
	"testing"
)

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid message", "tell me about Dolo 650", false},
		{"valid with punctuation", "What's Pan D used for?", false},
		{"empty", "", true},
		{"whitespace only", "   \t  ", true},
		{"at limit", strings.Repeat("a", 500), false},
		{"over limit", strings.Repeat("a", 501), true},
		{"script tag", "hello <script>alert(1)</script>", true},
		{"sql injection", "dolo' OR 1=1 union select *", true},
		{"path traversal", "../../etc/passwd", true},
		{"template injection", "${jndi:ldap://x}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMessage(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("Expected an error for %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error for %q, got %v", tt.input, err)
			}
		})
	}
}

func TestValidateMedicineName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "Dolo 650", false},
		{"name with diacritics", "Paracétamol", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"at limit", strings.Repeat("a", 100), false},
		{"over limit", strings.Repeat("a", 101), true},
		{"script injection", "<script>x</script>", true},
		{"file scheme", "file:///etc/hosts", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMedicineName(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("Expected an error for %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error for %q, got %v", tt.input, err)
			}
		})
	}
}

func TestDangerousMatchingIsCaseInsensitive(t *testing.T) {
	if err := ValidateMessage("<SCRIPT>alert(1)</SCRIPT>"); err == nil {
		t.Error("Expected uppercase markup to be rejected")
	}
}
