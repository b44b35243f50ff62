package code

// HTTP status codes used by the response layer.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: failed to bind request parameters.
	ErrBind
	// ErrValidation - 400: request parameter validation failed.
	ErrValidation
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Envelope error codes (101xxx).
const (
	// ErrEnvelopeNotFound - 404: envelope does not exist.
	ErrEnvelopeNotFound int = iota + 101000
	// ErrEnvelopeInvalidID - 400: invalid envelope id.
	ErrEnvelopeInvalidID
	// ErrLegacyDateInvalid - 400: legacy date missing or unparseable.
	ErrLegacyDateInvalid
)

// Location error codes (102xxx).
const (
	// ErrNoPlaceName - 404: coordinates resolved but no settlement name.
	ErrNoPlaceName int = iota + 102000
	// ErrReverseGeocodeFailed - 500: reverse geocoding request failed.
	ErrReverseGeocodeFailed
	// ErrPositionUnavailable - 400: client positioning failed.
	ErrPositionUnavailable
)

// Group error codes (103xxx).
const (
	// ErrGroupNotFound - 404: group does not exist.
	ErrGroupNotFound int = iota + 103000
	// ErrGroupAlreadyExist - 400: group already exists.
	ErrGroupAlreadyExist
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
