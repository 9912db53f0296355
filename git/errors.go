package git

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/jmgilman/issuectl/errors"
)

// wrapError classifies a go-git error and wraps it with message.
// If err is nil, returns nil.
func wrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, classifyError(err), message)
}

// classifyError maps go-git errors to platform error codes. Unknown errors
// are reported as INTERNAL_ERROR.
func classifyError(err error) errors.ErrorCode {
	switch {
	case errors.Is(err, gogit.ErrRepositoryNotExists),
		errors.Is(err, gogit.ErrRemoteNotFound):
		return errors.CodeNotFound
	case errors.Is(err, gogit.ErrRepositoryAlreadyExists),
		errors.Is(err, gogit.ErrRemoteExists):
		return errors.CodeConflict
	case errors.Is(err, config.ErrRemoteConfigEmptyName),
		errors.Is(err, config.ErrRemoteConfigEmptyURL):
		return errors.CodeInvalidInput
	default:
		return errors.CodeInternal
	}
}
