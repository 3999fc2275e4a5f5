package models

// Application-specific error codes surfaced in the response envelope's
// message field and in logs. The HTTP status carries the taxonomy; these
// make log lines grep-able.
const (
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeValidation          = "VALIDATION_ERROR"
	ErrorCodeInvalidIDFormat     = "INVALID_ID_FORMAT"
	ErrorCodeNotFound            = "NOT_FOUND"
	ErrorCodeFeatureDisabled     = "FEATURE_DISABLED"
	ErrorCodeUnauthorized        = "UNAUTHORIZED"
)
