package errors

import (
	"errors"
	"maps"
)

// WithContext returns a copy of err with one context field added.
// Existing fields are preserved. A non-PlatformError is first converted to
// one with CodeUnknown. Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "issue not found")
//	err = errors.WithContext(err, "issue", 42)
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with the given fields merged into its
// context. New fields override existing ones with the same key.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "operation":  "update",
//	    "repository": "octo/hello",
//	})
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	platformErr := asPlatformError(err)

	merged := make(map[string]interface{}, len(ctx))
	if existing := platformErr.Context(); existing != nil {
		maps.Copy(merged, existing)
	}
	maps.Copy(merged, ctx)

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        merged,
		cause:          platformErr.Unwrap(),
	}
}

// asPlatformError returns err as a PlatformError, converting plain errors to
// CodeUnknown.
func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
