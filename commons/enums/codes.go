package enums

// Machine-stable error codes returned in API bodies.
const (
	MISSING_FIELD     = "MISSING_FIELD"
	FIELD_TOO_LONG    = "FIELD_TOO_LONG"
	INVALID_EMAIL     = "INVALID_EMAIL"
	DUPLICATE_EMAIL   = "DUPLICATE_EMAIL"
	UNAUTHORIZED      = "UNAUTHORIZED"
	STORAGE_ERROR     = "STORAGE_ERROR"
	THROTTLE_EXCEEDED = "THROTTLE_EXCEEDED"
	NOT_FOUND         = "NOT_FOUND"
	INTERNAL_ERROR    = "INTERNAL_ERROR"
)
