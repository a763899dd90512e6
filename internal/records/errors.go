package records

import "errors"

var (
	// ErrorServiceUnavailable indicates the record service could not be
	// reached or did not answer within the request timeout; callers
	// must surface this distinctly from credential failures
	ErrorServiceUnavailable = errors.New("record_service_unavailable")
	// ErrorNotFound indicates the requested record does not exist
	ErrorNotFound = errors.New("record_not_found")
	// ErrorUnsuccessfulResponse indicates the record service answered
	// with an unexpected status code
	ErrorUnsuccessfulResponse = errors.New("record_service_unsuccessful_response")
)
