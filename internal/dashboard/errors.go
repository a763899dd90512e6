package dashboard

import "errors"

var (
	ErrorAuthRequired            = errors.New("auth_required")
	ErrorInsufficientPermissions = errors.New("insufficient_permissions")
	ErrorInvalidInput            = errors.New("invalid_input")
	ErrorInvalidCredentials      = errors.New("invalid_credentials")
	ErrorServiceUnavailable      = errors.New("service_unavailable")

	ErrorMissingCache         = errors.New("missing_cache")
	ErrorMissingRecordsClient = errors.New("missing_records_client")
	ErrorMissingServiceLog    = errors.New("missing_service_log")
	ErrorMissingSessionCodec  = errors.New("missing_session_codec")
)
