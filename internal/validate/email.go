package validate

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrorEmailMissing     = errors.New("email_missing")
	ErrorEmailInvalidAt   = errors.New("email_invalid_at")
	ErrorEmailEmptyDomain = errors.New("email_empty_domain")
	ErrorEmailBadDomain   = errors.New("email_domain_invalid")
)

var domainRegex = regexp.MustCompile(
	`^(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)(?:\.(?i:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?))*\.[a-z]{2,}$`,
)

// Email performs form-level validation of an email address; failures
// are surfaced inline to the user and never reach the network layer
func Email(email string) error {
	if len(email) <= 3 {
		return ErrorEmailMissing
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return ErrorEmailInvalidAt
	}
	domain := email[at+1:]
	if len(domain) == 0 {
		return ErrorEmailEmptyDomain
	}
	if !domainRegex.MatchString(domain) {
		return ErrorEmailBadDomain
	}
	return nil
}
