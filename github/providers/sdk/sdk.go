// Package sdk provides a GitHub provider implementation using the go-github SDK.
//
// This package implements the github.Provider interface by wrapping the
// github.com/google/go-github/v67 SDK. It is the default issuectl backend.
package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/issuectl/errors"
	gh "github.com/jmgilman/issuectl/github"
)

const (
	// UserAgent identifies issuectl to the API.
	UserAgent = "issuectl"

	// APIVersion is the REST API version requested on every call.
	APIVersion = "2022-11-28"

	mediaType = "application/vnd.github+json"
)

// SDKProvider implements github.Provider using the go-github SDK.
type SDKProvider struct {
	client *github.Client
}

// NewSDKProvider creates a provider using the GitHub SDK.
//
// Example with token authentication:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//
// Example against GitHub Enterprise Server:
//
//	provider, err := sdk.NewSDKProvider(
//	    sdk.WithToken(token),
//	    sdk.WithBaseURL("https://ghe.example.com/api/v3"),
//	)
func NewSDKProvider(opts ...Option) (*SDKProvider, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// If no client was provided, create a default one
	if cfg.client == nil {
		if cfg.token == "" {
			err := errors.New(errors.CodeMissingCredential, "either token or client must be provided")
			return nil, errors.WithContext(err, "field", "token or client")
		}
		httpClient := &http.Client{Transport: &headerTransport{base: http.DefaultTransport}}
		cfg.client = github.NewClient(httpClient).WithAuthToken(cfg.token)
		cfg.client.UserAgent = UserAgent
	}

	if cfg.baseURL != nil {
		cfg.client.BaseURL = cfg.baseURL
	}

	return &SDKProvider{
		client: cfg.client,
	}, nil
}

// config holds configuration for SDKProvider.
type config struct {
	client  *github.Client
	token   string
	baseURL *url.URL
}

// Option configures the SDK provider.
type Option func(*config) error

// WithToken sets the authentication token for the SDK provider.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeMissingCredential, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithClient sets a custom GitHub client for the SDK provider.
// This allows full control over the HTTP client configuration,
// authentication, and other advanced settings.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithBaseURL points the provider at a different API root, such as a GitHub
// Enterprise Server instance. The URL is used as given.
func WithBaseURL(rawURL string) Option {
	return func(cfg *config) error {
		u, err := url.Parse(rawURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			e := errors.Newf(errors.CodeInvalidConfig, "invalid API base URL %q", rawURL)
			return errors.WithContext(e, "field", "github_api_url")
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		cfg.baseURL = u
		return nil
	}
}

// headerTransport sets the media type and API version on every request.
type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", mediaType)
	req.Header.Set("X-GitHub-Api-Version", APIVersion)
	return t.base.RoundTrip(req)
}

// Client returns the underlying go-github client.
func (s *SDKProvider) Client() *github.Client {
	return s.client
}

// wrapError wraps go-github errors with appropriate error codes.
func (s *SDKProvider) wrapError(err error, resp *github.Response, message string) error {
	if err == nil {
		return nil
	}

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return errors.Wrap(err, errors.CodeRateLimit, message)
	}

	// Extract status code from response
	statusCode := 0
	if resp != nil && resp.Response != nil {
		statusCode = resp.StatusCode
	}

	// Try to get status code from ErrorResponse
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		if ghErr.Response != nil {
			statusCode = ghErr.Response.StatusCode
		}
		if detail := errorDetail(ghErr); detail != "" {
			message += ": " + detail
		}
	}

	return gh.WrapHTTPError(err, statusCode, message)
}

// errorDetail renders the API's message and field errors, e.g.
// "Validation Failed (assignees: ghost is not assignable)".
func errorDetail(ghErr *github.ErrorResponse) string {
	fields := make([]string, 0, len(ghErr.Errors))
	for _, e := range ghErr.Errors {
		text := e.Message
		if text == "" {
			text = e.Code
		}
		if e.Field != "" {
			text = e.Field + ": " + text
		}
		if text != "" {
			fields = append(fields, text)
		}
	}

	detail := ghErr.Message
	if len(fields) > 0 {
		detail += " (" + strings.Join(fields, "; ") + ")"
	}
	return strings.TrimSpace(detail)
}

// Issue operations

// CreateIssue creates a new issue.
func (s *SDKProvider) CreateIssue(ctx context.Context, owner, repo string, opts gh.CreateIssueOptions) (*gh.IssueData, error) {
	req := &github.IssueRequest{
		Title:     github.String(opts.Title),
		Milestone: opts.Milestone,
	}

	// Optional fields are left out entirely rather than sent empty
	if opts.Body != "" {
		req.Body = github.String(opts.Body)
	}
	if len(opts.Labels) > 0 {
		req.Labels = &opts.Labels
	}
	if len(opts.Assignees) > 0 {
		req.Assignees = &opts.Assignees
	}

	issue, resp, err := s.client.Issues.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to create issue")
	}

	return convertIssue(issue), nil
}

// GetIssue retrieves a specific issue by number.
func (s *SDKProvider) GetIssue(ctx context.Context, owner, repo string, number int) (*gh.IssueData, error) {
	issue, resp, err := s.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to get issue")
	}

	return convertIssue(issue), nil
}

// ListIssues fetches one page of the repository issue listing. Pull requests
// are included and flagged.
func (s *SDKProvider) ListIssues(ctx context.Context, owner, repo string, opts gh.ListIssuesOptions, page int) (*gh.IssuePage, error) {
	state := opts.State
	if state == "" {
		state = gh.StateOpen
	}

	ghOpts := &github.IssueListByRepoOptions{
		Milestone: opts.Milestone,
		State:     state,
		Assignee:  opts.Assignee,
		Creator:   opts.Creator,
		Mentioned: opts.Mentioned,
		Labels:    opts.Labels,
		Sort:      opts.Sort,
		Direction: opts.Direction,
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: opts.PerPage,
		},
	}

	if opts.Since != nil {
		ghOpts.Since = opts.Since.UTC()
	}

	issues, resp, err := s.client.Issues.ListByRepo(ctx, owner, repo, ghOpts)
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to list issues")
	}

	result := &gh.IssuePage{
		Issues:   make([]*gh.IssueData, 0, len(issues)),
		NextPage: resp.NextPage,
	}
	for _, issue := range issues {
		result.Issues = append(result.Issues, convertIssue(issue))
	}

	return result, nil
}

// UpdateIssue sends a partial update. The request body is built from
// opts.Payload so that a cleared milestone is sent as an explicit null,
// which go-github's IssueRequest cannot express.
func (s *SDKProvider) UpdateIssue(ctx context.Context, owner, repo string, number int, opts gh.UpdateIssueOptions) (*gh.IssueData, error) {
	u := fmt.Sprintf("repos/%v/%v/issues/%d", owner, repo, number)
	req, err := s.client.NewRequest(http.MethodPatch, u, opts.Payload())
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to build update request")
	}

	issue := new(github.Issue)
	resp, err := s.client.Do(ctx, req, issue)
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to update issue")
	}

	return convertIssue(issue), nil
}

// CreateComment appends a comment to an issue.
func (s *SDKProvider) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*gh.CommentData, error) {
	comment, resp, err := s.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, s.wrapError(err, resp, "failed to create comment")
	}

	data := &gh.CommentData{
		ID:        comment.GetID(),
		Body:      comment.GetBody(),
		HTMLURL:   comment.GetHTMLURL(),
		CreatedAt: comment.GetCreatedAt().Time,
	}
	if user := comment.GetUser(); user != nil {
		data.Author = user.GetLogin()
	}

	return data, nil
}

// LockIssue locks the conversation on an issue.
func (s *SDKProvider) LockIssue(ctx context.Context, owner, repo string, number int, reason string) error {
	var opts *github.LockIssueOptions
	if reason != "" {
		opts = &github.LockIssueOptions{LockReason: reason}
	}

	resp, err := s.client.Issues.Lock(ctx, owner, repo, number, opts)
	if err != nil {
		return s.wrapError(err, resp, "failed to lock issue")
	}

	return nil
}

// UnlockIssue unlocks the conversation on an issue.
func (s *SDKProvider) UnlockIssue(ctx context.Context, owner, repo string, number int) error {
	resp, err := s.client.Issues.Unlock(ctx, owner, repo, number)
	if err != nil {
		return s.wrapError(err, resp, "failed to unlock issue")
	}

	return nil
}

// convertIssue converts a go-github Issue to IssueData.
func convertIssue(issue *github.Issue) *gh.IssueData {
	if issue == nil {
		return nil
	}

	data := &gh.IssueData{
		Number:      issue.GetNumber(),
		Title:       issue.GetTitle(),
		Body:        issue.GetBody(),
		State:       issue.GetState(),
		StateReason: issue.GetStateReason(),
		Comments:    issue.GetComments(),
		Locked:      issue.GetLocked(),
		LockReason:  issue.GetActiveLockReason(),
		PullRequest: issue.IsPullRequest(),
		HTMLURL:     issue.GetHTMLURL(),
		CreatedAt:   issue.GetCreatedAt().Time,
		UpdatedAt:   issue.GetUpdatedAt().Time,
	}

	// Extract author
	if user := issue.GetUser(); user != nil {
		data.Author = user.GetLogin()
	}

	// Extract labels
	data.Labels = make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		data.Labels = append(data.Labels, label.GetName())
	}

	// Extract assignees
	data.Assignees = make([]string, 0, len(issue.Assignees))
	for _, assignee := range issue.Assignees {
		data.Assignees = append(data.Assignees, assignee.GetLogin())
	}

	// Extract milestone
	if milestone := issue.GetMilestone(); milestone != nil {
		data.Milestone = &gh.MilestoneData{
			Number: milestone.GetNumber(),
			Title:  milestone.GetTitle(),
		}
	}

	// Extract closed time
	if closedAt := issue.GetClosedAt(); !closedAt.IsZero() {
		t := closedAt.Time
		data.ClosedAt = &t
	}

	return data
}
