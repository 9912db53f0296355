package errors

// ErrorCode represents a specific error condition.
// Codes are strings so they read well in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// Local validation errors. These are raised before any network call.

	// CodeMissingCredential indicates no authentication token is configured.
	CodeMissingCredential ErrorCode = "MISSING_CREDENTIAL"

	// CodeAmbiguousResource indicates a short repository name was given
	// without a default owner to qualify it.
	CodeAmbiguousResource ErrorCode = "AMBIGUOUS_RESOURCE"

	// CodeInvalidTimeExpression indicates a since expression matched neither
	// the relative nor the absolute grammar.
	CodeInvalidTimeExpression ErrorCode = "INVALID_TIME_EXPRESSION"

	// CodeInvalidReason indicates a state reason or lock reason that is not
	// legal for the requested operation.
	CodeInvalidReason ErrorCode = "INVALID_REASON"

	// CodeInvalidState indicates an unknown issue state.
	CodeInvalidState ErrorCode = "INVALID_STATE"

	// CodeInvalidInput indicates any other malformed argument.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates the configuration could not be loaded.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Remote errors. These are raised after a call to the issue API.

	// CodeNotFound indicates the repository or issue does not exist or is not
	// visible with the configured credential.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeRejected indicates the API refused the request as invalid.
	CodeRejected ErrorCode = "REMOTE_REJECTED"

	// CodeUnauthorized indicates the credential was refused.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden indicates the credential lacks permission.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeConflict indicates a resource state conflict.
	CodeConflict ErrorCode = "CONFLICT"

	// CodeRateLimit indicates the API rate limit has been exceeded.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"

	// CodeUnavailable indicates a transport failure, timeout or server error.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Side-channel errors.

	// CodeNotificationFailed indicates the notification webhook could not be
	// reached or refused the message. Never surfaced to the user.
	CodeNotificationFailed ErrorCode = "NOTIFICATION_FAILED"

	// System errors.

	// CodeExecutionFailed indicates an external command failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeInternal indicates an internal error.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
