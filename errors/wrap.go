package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message while preserving it as the cause.
//
// If err already is a PlatformError its classification is kept, so a
// retryable transport failure stays retryable when re-coded by a caller.
// Returns nil if err is nil.
//
// Example:
//
//	issue, resp, err := client.Issues.Get(ctx, owner, repo, number)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeUnavailable, "failed to get issue")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps err with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}
