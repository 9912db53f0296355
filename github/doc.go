// Package github implements the issue mutation and query engine behind
// issuectl.
//
// The package talks to GitHub through a pluggable Provider. Two
// implementations live under providers/: one built on the go-github SDK and
// one that drives the gh CLI. Everything above the provider is backend
// independent.
//
// # Core Types
//
// Client is the main entry point. It holds the provider, the default owner
// used to expand short repository references, a Notifier and a logger.
//
// Repository carries every issue operation for one repository: create, get,
// update, close, complete, reopen, comment, lock, unlock and list.
//
// IssueIterator walks a paginated listing lazily, skipping pull requests and
// stopping at the requested limit.
//
// # Partial Updates
//
// Labels and assignees are changed with a FieldUpdate, which is exactly one
// of NoChange, AddRemove or Replace. Add/remove needs the current value, so
// the repository reads the issue once before writing; a replacement is sent
// without a read. Only fields that were asked for are sent to GitHub.
//
//	repo.UpdateIssue(ctx, 42, github.IssueUpdate{
//	    Labels:    github.AddRemove([]string{"triaged"}, nil),
//	    Assignees: github.Replace([]string{"alice"}),
//	})
//
// # State Transitions
//
// ValidateTransition checks state and state reason pairs before any request
// is made: closing allows "completed" and "not_planned", reopening allows
// "reopened". ValidateLockReason checks lock reasons.
//
// # Time Filters
//
// ParseSince turns "7d", "12h", "30m" or an absolute UTC date or date-time
// into the instant used by the since filter.
//
// # Error Handling
//
// All errors are errors.PlatformError values. Invalid input is reported
// before any network call with CodeInvalidInput, CodeInvalidState,
// CodeInvalidReason, CodeInvalidTimeExpression or CodeAmbiguousResource.
// Remote failures keep the provider's code and carry operation, repository
// and issue context.
//
// # Notifications
//
// After a successful mutation the client's Notifier receives a one-line
// summary. Notification errors are logged at debug level and never returned.
package github
