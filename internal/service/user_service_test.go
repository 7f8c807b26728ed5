package service

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"listener42@example.com",
		"first.last+tag@sub.domain.org",
	}
	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"@no-local.com",
		"spaces in@address.com",
		"double@@at.com",
	}

	for _, email := range valid {
		if !ValidEmail(email) {
			t.Errorf("ValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Errorf("ValidEmail(%q) = true, want false", email)
		}
	}
}
