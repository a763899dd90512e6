package validate

import (
	"errors"
	"testing"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"ana@example.org",
		"luis.gomez@sub.example.com",
		"a@b.co",
	}
	for _, email := range valid {
		if err := Email(email); err != nil {
			t.Errorf("Email(%q): expected valid, got: %v", email, err)
		}
	}

	invalid := map[string]error{
		"":                  ErrorEmailMissing,
		"ab":                ErrorEmailMissing,
		"no-at-sign.org":    ErrorEmailInvalidAt,
		"@example.org":      ErrorEmailInvalidAt,
		"a@b@example.org":   ErrorEmailInvalidAt,
		"ana@localhost":     ErrorEmailBadDomain,
		"ana@-bad-.example": ErrorEmailBadDomain,
	}
	for email, expected := range invalid {
		if err := Email(email); !errors.Is(err, expected) {
			t.Errorf("Email(%q): expected %v, got: %v", email, expected, err)
		}
	}
}
