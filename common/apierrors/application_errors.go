package apierrors

// Codes for application errors. The HTTP layer answers 408 for
// ErrCodeRequestTimeout, 503 for ErrCodeServiceUnavailable, 400 for
// ErrCodeMalformedData and 500 for the rest.
const (
	// Store backends (memory, file, Mongo, Postgres, Redis, Firestore).
	ErrCodeDatabaseAccess     = "DATABASE_ACCESS_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"

	// Request handling.
	ErrCodeMalformedData  = "MALFORMED_DATA" // body is not JSON of the expected shape
	ErrCodeRequestTimeout = "REQUEST_TIMEOUT"

	// Failures inside the service.
	ErrCodeInternalProcessing = "INTERNAL_PROCESSING_ERROR"
	ErrCodeSystemPanic        = "SYSTEM_PANIC"
	ErrCodeUnknown            = "UNKNOWN_ERROR"
)
