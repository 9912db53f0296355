package github

import (
	"slices"
	"strings"

	"github.com/jmgilman/issuectl/errors"
)

// Operation identifies the mutation a state transition belongs to.
type Operation string

// Operations with state transition rules.
const (
	OpClose  Operation = "close"
	OpReopen Operation = "reopen"
	OpUpdate Operation = "update"
)

var (
	closeReasons  = []string{ReasonCompleted, ReasonNotPlanned}
	reopenReasons = []string{ReasonReopened}
	lockReasons   = []string{LockReasonOffTopic, LockReasonTooHeated, LockReasonResolved, LockReasonSpam}
)

// ValidateTransition checks a requested state and state reason for op.
// Empty strings mean "not given". It never changes anything.
//
// Close implies state closed and allows completed or not_planned. Reopen
// implies state open and allows reopened. Update may target either state,
// with the reason checked against that state; a reason without a state is
// checked against both vocabularies.
func ValidateTransition(op Operation, state, reason string) error {
	switch op {
	case OpClose:
		if state != "" && state != StateClosed {
			return invalidState(op, state)
		}
		return checkReason(op, StateClosed, reason, closeReasons)
	case OpReopen:
		if state != "" && state != StateOpen {
			return invalidState(op, state)
		}
		return checkReason(op, StateOpen, reason, reopenReasons)
	case OpUpdate:
		switch state {
		case StateClosed:
			return checkReason(op, state, reason, closeReasons)
		case StateOpen:
			return checkReason(op, state, reason, reopenReasons)
		case "":
			return checkReason(op, "", reason, slices.Concat(closeReasons, reopenReasons))
		default:
			return invalidState(op, state)
		}
	default:
		return errors.Newf(errors.CodeInternal, "unknown operation %q", op)
	}
}

// ImpliedState returns the state a reason implies when given without one.
func ImpliedState(reason string) string {
	switch reason {
	case "":
		return ""
	case ReasonReopened:
		return StateOpen
	default:
		return StateClosed
	}
}

// ValidateLockReason checks an optional lock reason.
func ValidateLockReason(reason string) error {
	if reason == "" || slices.Contains(lockReasons, reason) {
		return nil
	}
	return errors.WithContextMap(
		errors.Newf(errors.CodeInvalidReason, "invalid lock reason %q: must be one of %s", reason, quoteAll(lockReasons)),
		map[string]interface{}{"operation": "lock", "reason": reason},
	)
}

func checkReason(op Operation, state, reason string, allowed []string) error {
	if reason == "" || slices.Contains(allowed, reason) {
		return nil
	}

	action := string(op)
	if op == OpUpdate && state != "" {
		action = "update to " + state
	}
	err := errors.Newf(errors.CodeInvalidReason,
		"invalid reason %q for %s: must be one of %s", reason, action, quoteAll(allowed))
	return errors.WithContextMap(err, map[string]interface{}{
		"operation": string(op),
		"state":     state,
		"reason":    reason,
	})
}

func invalidState(op Operation, state string) error {
	err := errors.Newf(errors.CodeInvalidState, "invalid state %q for %s: must be open or closed", state, op)
	return errors.WithContextMap(err, map[string]interface{}{
		"operation": string(op),
		"state":     state,
	})
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ", ")
}
