package code

// Error code to default message mapping
var codeMessageMap = map[int]string{
	// Common
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "failed to bind request parameters",
	ErrValidation:      "request parameter validation failed",
	ErrTooManyRequests: "too many requests",

	// Envelopes
	ErrEnvelopeNotFound:  "envelope does not exist",
	ErrEnvelopeInvalidID: "valid id required",
	ErrLegacyDateInvalid: "legacy_date required (YYYY-MM-DD)",

	// Location
	ErrNoPlaceName:          "resolved coordinates but no place name",
	ErrReverseGeocodeFailed: "could not convert coordinates to a place name",
	ErrPositionUnavailable:  "position unavailable",

	// Groups
	ErrGroupNotFound:     "group does not exist",
	ErrGroupAlreadyExist: "group already exists",

	// Database
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record does not exist",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	// Envelopes
	ErrEnvelopeNotFound:  StatusNotFound,
	ErrEnvelopeInvalidID: StatusBadRequest,
	ErrLegacyDateInvalid: StatusBadRequest,

	// Location
	ErrNoPlaceName:          StatusNotFound,
	ErrReverseGeocodeFailed: StatusInternalServerError,
	ErrPositionUnavailable:  StatusBadRequest,

	// Groups
	ErrGroupNotFound:     StatusNotFound,
	ErrGroupAlreadyExist: StatusBadRequest,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the default message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
