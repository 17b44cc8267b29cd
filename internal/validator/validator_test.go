package validator

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		value string
		tag   string
		want  bool
	}{
		{"alphanumeric username", "alice42", "alphanum", true},
		{"username with space", "alice 42", "alphanum", false},
		{"six digit hex", "#007bff", "hex_color", true},
		{"upper case hex", "#00FF7A", "hex_color", true},
		{"short hex rejected", "#fff", "hex_color", false},
		{"missing hash", "007bff", "hex_color", false},
		{"weekly period", "weekly", "budget_period", true},
		{"yearly period", "yearly", "budget_period", true},
		{"daily period", "daily", "budget_period", false},
		{"cash payment", "cash", "payment_method", true},
		{"bank transfer payment", "bank_transfer", "payment_method", true},
		{"cheque payment", "cheque", "payment_method", false},
		{"uuid", "0190d3d6-5c2f-7a8b-9c4d-1e2f3a4b5c6d", "uuid", true},
		{"not uuid", "42", "uuid", false},
		{"url", "https://example.com/r.png", "url", true},
		{"not url", "receipt", "url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.value, tt.tag); got != tt.want {
				t.Errorf("Check(%q, %q) = %v, want %v", tt.value, tt.tag, got, tt.want)
			}
		})
	}
}
