package auth

import "errors"

var (
	// ErrorMalformedToken indicates the transport token could not be
	// decoded back into a session
	ErrorMalformedToken = errors.New("malformed_token")
	// ErrorTokenExpired indicates the token was issued more than the
	// validity window ago
	ErrorTokenExpired = errors.New("token_expired")
	// ErrorUnknownDepartment indicates a department tag outside the
	// known set was used to derive a role
	ErrorUnknownDepartment = errors.New("unknown_department")
)
