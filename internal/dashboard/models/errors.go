package models

import "fmt"

var (
	ErrorCredentialsAuthenticationFailed = fmt.Errorf("credentials_authentication_failed")
	ErrorSessionRevoked                  = fmt.Errorf("session_revoked")

	errorAccountHasNoTypes = fmt.Errorf("account_has_no_types")
)
