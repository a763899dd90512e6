package dashboard

import "errors"

var (
	ErrorConnectionRefused = errors.New("connection refused")
	ErrorLoginFailed       = errors.New("login failed")
	ErrorNotAuthenticated  = errors.New("not authenticated")
	ErrorNotAuthorized     = errors.New("not authorized")
)
