package utils

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"aarav.sharma@muj.manipal.edu",
		"hr@acme.example.com",
		"first+tag@sub.domain.org",
	}
	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = false, want true", e)
		}
	}

	invalid := []string{"", "plainstring", "missing@tld", "@no-local.com", "spaces in@mail.com"}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = true, want false", e)
		}
	}
}

func TestIsDigits(t *testing.T) {
	cases := []struct {
		s    string
		n    int
		want bool
	}{
		{"9876543210", 10, true},
		{"560001", 6, true},
		{"98765", 10, false},
		{"98765432101", 10, false},
		{"98765a3210", 10, false},
		{"", 0, false},
		{" 876543210", 10, false},
	}
	for _, tc := range cases {
		if got := IsDigits(tc.s, tc.n); got != tc.want {
			t.Errorf("IsDigits(%q, %d) = %v, want %v", tc.s, tc.n, got, tc.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, msg := ValidatePassword("short"); ok || msg == "" {
		t.Errorf("ValidatePassword(short) = %v, %q", ok, msg)
	}
	if ok, msg := ValidatePassword("longenough"); !ok || msg != "" {
		t.Errorf("ValidatePassword(longenough) = %v, %q", ok, msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  Aarav Sharma  "); got != "Aarav Sharma" {
		t.Errorf("SanitizeInput trim = %q", got)
	}
	if got := SanitizeInput("a\x00b"); got != "ab" {
		t.Errorf("SanitizeInput null bytes = %q", got)
	}
}

func TestStoredFilename(t *testing.T) {
	got := StoredFilename("Offer Letter.PDF")
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("StoredFilename = %q, want .pdf suffix", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("StoredFilename = %q, contains spaces", got)
	}
	if got == StoredFilename("Offer Letter.PDF") {
		t.Error("StoredFilename should not repeat for the same input")
	}
}

func TestApplicationNumber(t *testing.T) {
	got := ApplicationNumber(2026)
	if !strings.HasPrefix(got, "NOC-2026-") {
		t.Errorf("ApplicationNumber = %q, want NOC-2026- prefix", got)
	}
	if len(got) != len("NOC-2026-")+8 {
		t.Errorf("ApplicationNumber = %q, want 8-char suffix", got)
	}
}
