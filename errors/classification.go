package errors

// ErrorClassification indicates whether repeating the operation could succeed.
// issuectl never retries on its own; the classification is reported so that
// scripts driving the CLI can decide.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a temporary failure.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that will repeat.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry could help.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeUnavailable:        ClassificationRetryable,
	CodeRateLimit:          ClassificationRetryable,
	CodeNotificationFailed: ClassificationRetryable,

	CodeMissingCredential:     ClassificationPermanent,
	CodeAmbiguousResource:     ClassificationPermanent,
	CodeInvalidTimeExpression: ClassificationPermanent,
	CodeInvalidReason:         ClassificationPermanent,
	CodeInvalidState:          ClassificationPermanent,
	CodeInvalidInput:          ClassificationPermanent,
	CodeInvalidConfig:         ClassificationPermanent,
	CodeNotFound:              ClassificationPermanent,
	CodeRejected:              ClassificationPermanent,
	CodeUnauthorized:          ClassificationPermanent,
	CodeForbidden:             ClassificationPermanent,
	CodeConflict:              ClassificationPermanent,
	CodeExecutionFailed:       ClassificationPermanent,
	CodeInternal:              ClassificationPermanent,
	CodeUnknown:               ClassificationPermanent,
}

// getDefaultClassification returns the default classification for a code.
// Unknown codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
