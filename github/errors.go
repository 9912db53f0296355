package github

import (
	"fmt"
	"net/http"

	"github.com/jmgilman/issuectl/errors"
)

// WrapHTTPError wraps an error based on the HTTP status code returned by the
// GitHub API. A status of zero means the request never produced a response
// and is treated as a transport failure.
func WrapHTTPError(err error, statusCode int, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, CodeForStatus(statusCode), message)
}

// CodeForStatus maps an HTTP status code to an error code.
func CodeForStatus(statusCode int) errors.ErrorCode {
	switch statusCode {
	case 0:
		return errors.CodeUnavailable
	case http.StatusNotFound, http.StatusGone:
		return errors.CodeNotFound
	case http.StatusUnauthorized:
		return errors.CodeUnauthorized
	case http.StatusForbidden:
		return errors.CodeForbidden
	case http.StatusConflict:
		return errors.CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.CodeRejected
	case http.StatusTooManyRequests:
		return errors.CodeRateLimit
	default:
		if statusCode >= 500 {
			return errors.CodeUnavailable
		}
		return errors.CodeUnknown
	}
}

// wrapRemote annotates a provider error with the operation and target. The
// provider's error code and message are kept; errors without a code are
// treated as transport failures.
func wrapRemote(err error, operation, repository string, number int) error {
	if err == nil {
		return nil
	}

	if errors.GetCode(err) == errors.CodeUnknown {
		err = errors.Wrapf(err, errors.CodeUnavailable, "failed to %s", operation)
	}

	ctx := map[string]interface{}{
		"operation":  operation,
		"repository": repository,
	}
	if number > 0 {
		ctx["issue"] = number
	}
	return errors.WithContextMap(err, ctx)
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	err = errors.WithContext(err, "reason", reason)
	return err
}
