// Package errors provides the structured error type shared by every issuectl
// package.
//
// Errors carry a code that identifies the failure kind (missing credential,
// invalid reason, remote rejection, ...), a retry classification, a human
// readable message, optional context metadata and an optional cause. The
// package stays compatible with the standard library: errors.Is, errors.As and
// errors.Unwrap work across the chain.
//
// Creating and wrapping:
//
//	err := errors.New(errors.CodeInvalidReason, "reason must be completed or not_planned")
//
//	issue, err := provider.GetIssue(ctx, owner, repo, number)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNotFound, "failed to get issue")
//	}
//
// Inspecting:
//
//	switch errors.GetCode(err) {
//	case errors.CodeMissingCredential:
//	    // ...
//	}
package errors

// PlatformError extends the standard error interface with a code,
// classification, message and context.
type PlatformError interface {
	error

	// Code returns the error code identifying the kind of failure.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
