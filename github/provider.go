package github

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/provider.go -pkg mocks . Provider

// Provider defines the interface for talking to the GitHub issues API.
// Implementations include the SDK provider (go-github) and the CLI provider
// (gh api).
//
// Providers are thin transports: they send exactly what they are given and
// return items the way the API delivers them, pull requests included. All
// validation, merging and filtering happens in Repository and IssueIterator.
//
// Errors are PlatformErrors whose code reflects the HTTP status:
// CodeNotFound, CodeRejected, CodeUnauthorized, CodeForbidden, CodeConflict,
// CodeRateLimit or CodeUnavailable.
type Provider interface {
	// GetIssue retrieves a specific issue by number.
	GetIssue(ctx context.Context, owner, repo string, number int) (*IssueData, error)

	// ListIssues fetches one page of the repository issue listing. page is
	// 1-based. The returned NextPage is zero when there are no more pages.
	ListIssues(ctx context.Context, owner, repo string, opts ListIssuesOptions, page int) (*IssuePage, error)

	// CreateIssue creates a new issue.
	CreateIssue(ctx context.Context, owner, repo string, opts CreateIssueOptions) (*IssueData, error)

	// UpdateIssue sends a partial update containing only the fields set in
	// opts.
	UpdateIssue(ctx context.Context, owner, repo string, number int, opts UpdateIssueOptions) (*IssueData, error)

	// CreateComment appends a comment to an issue.
	CreateComment(ctx context.Context, owner, repo string, number int, body string) (*CommentData, error)

	// LockIssue locks the conversation on an issue. reason may be empty.
	LockIssue(ctx context.Context, owner, repo string, number int, reason string) error

	// UnlockIssue unlocks the conversation on an issue.
	UnlockIssue(ctx context.Context, owner, repo string, number int) error
}
