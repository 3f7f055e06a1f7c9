package apperrors

// ErrorCode classifies an application error independently of HTTP.
type ErrorCode string

const (
	// System failures
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Generic business failures
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Uploads
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
	CodeFileTooLarge    ErrorCode = "FILE_TOO_LARGE"
	CodeTooManyFiles    ErrorCode = "TOO_MANY_FILES"
)
