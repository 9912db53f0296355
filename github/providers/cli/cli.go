//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/textproto"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jmgilman/issuectl/errors"
	"github.com/jmgilman/issuectl/exec"
	gh "github.com/jmgilman/issuectl/github"
)

const (
	apiVersion = "2022-11-28"
	mediaType  = "application/vnd.github+json"

	// DefaultAPIURL is the public GitHub API. Any other API URL selects a
	// GitHub Enterprise host through GH_HOST.
	DefaultAPIURL = "https://api.github.com"
)

var httpStatusPattern = regexp.MustCompile(`\(HTTP (\d{3})\)`)

// Option configures the CLI provider.
type Option func(*CLIProvider) error

// CLIProvider implements github.Provider using `gh api`.
type CLIProvider struct {
	wrapper *exec.CommandWrapper
	env     map[string]string
}

// NewCLIProvider creates a provider using the gh CLI.
// Authentication is inherited from the gh CLI configuration unless a token
// is given with WithToken.
//
// Example:
//
//	provider, err := cli.NewCLIProvider(cli.WithToken(os.Getenv("GITHUB_TOKEN")))
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewCLIProvider(opts ...Option) (*CLIProvider, error) {
	executor := exec.New(exec.WithInheritEnv())

	provider := &CLIProvider{
		wrapper: exec.NewWrapper(executor, "gh"),
		env:     map[string]string{},
	}

	// Apply options (can override the wrapper)
	for _, opt := range opts {
		if err := opt(provider); err != nil {
			return nil, err
		}
	}

	// Verify gh is installed and authenticated
	result, err := provider.command(context.Background()).Run("auth", "status")
	if err != nil {
		return nil, wrapAuthError(err, result)
	}

	return provider, nil
}

// WithExecutor sets a custom executor for the CLI provider.
// This is primarily useful for testing with a mock executor.
func WithExecutor(executor exec.Executor) Option {
	return func(p *CLIProvider) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		p.wrapper = exec.NewWrapper(executor, "gh")
		return nil
	}
}

// WithToken passes token to gh as GH_TOKEN. An empty token keeps the
// credentials stored by `gh auth login`.
func WithToken(token string) Option {
	return func(p *CLIProvider) error {
		if token != "" {
			p.env["GH_TOKEN"] = token
		}
		return nil
	}
}

// WithAPIURL points gh at the host serving apiURL. The public API needs no
// setting; GitHub Enterprise URLs set GH_HOST.
func WithAPIURL(apiURL string) Option {
	return func(p *CLIProvider) error {
		if apiURL == "" || strings.TrimSuffix(apiURL, "/") == DefaultAPIURL {
			return nil
		}

		u, err := url.Parse(apiURL)
		if err != nil || u.Host == "" {
			invalid := errors.Newf(errors.CodeInvalidConfig, "invalid GitHub API URL %q", apiURL)
			return errors.WithContext(invalid, "field", "github_api_url")
		}
		p.env["GH_HOST"] = u.Host
		return nil
	}
}

// CreateIssue creates a new issue.
func (c *CLIProvider) CreateIssue(ctx context.Context, owner, repo string, opts gh.CreateIssueOptions) (*gh.IssueData, error) {
	payload := map[string]any{"title": opts.Title}
	if opts.Body != "" {
		payload["body"] = opts.Body
	}
	if len(opts.Labels) > 0 {
		payload["labels"] = opts.Labels
	}
	if len(opts.Assignees) > 0 {
		payload["assignees"] = opts.Assignees
	}
	if opts.Milestone != nil {
		payload["milestone"] = *opts.Milestone
	}

	result, err := c.api(ctx, "POST", issuesPath(owner, repo), payload, false)
	if err != nil {
		return nil, c.wrapCLIError(ctx, err, result, "failed to create issue")
	}

	return c.parseIssue(result.Stdout)
}

// GetIssue retrieves an issue.
func (c *CLIProvider) GetIssue(ctx context.Context, owner, repo string, number int) (*gh.IssueData, error) {
	result, err := c.api(ctx, "GET", issuePath(owner, repo, number), nil, false)
	if err != nil {
		return nil, c.wrapCLIError(ctx, err, result, "failed to get issue")
	}

	return c.parseIssue(result.Stdout)
}

// ListIssues fetches one page of issues. The response headers are requested
// with --include so the Link header can be read for the next page.
func (c *CLIProvider) ListIssues(ctx context.Context, owner, repo string, opts gh.ListIssuesOptions, page int) (*gh.IssuePage, error) {
	query := url.Values{}
	for k, v := range opts.Query() {
		query.Set(k, v)
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	path := issuesPath(owner, repo) + "?" + query.Encode()
	result, err := c.api(ctx, "GET", path, nil, true)
	if err != nil {
		return nil, c.wrapCLIError(ctx, err, result, "failed to list issues")
	}

	header, body, err := splitResponse(result.Stdout)
	if err != nil {
		return nil, err
	}

	var items []apiIssue
	if err := c.parseJSON(body, &items); err != nil {
		return nil, err
	}

	issues := make([]*gh.IssueData, 0, len(items))
	for i := range items {
		issues = append(issues, items[i].convert())
	}

	return &gh.IssuePage{
		Issues:   issues,
		NextPage: nextPage(header.Values("Link")),
	}, nil
}

// UpdateIssue applies a partial update to an issue.
func (c *CLIProvider) UpdateIssue(ctx context.Context, owner, repo string, number int, opts gh.UpdateIssueOptions) (*gh.IssueData, error) {
	result, err := c.api(ctx, "PATCH", issuePath(owner, repo, number), opts.Payload(), false)
	if err != nil {
		return nil, c.wrapCLIError(ctx, err, result, "failed to update issue")
	}

	return c.parseIssue(result.Stdout)
}

// CreateComment adds a comment to an issue.
func (c *CLIProvider) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*gh.CommentData, error) {
	path := issuePath(owner, repo, number) + "/comments"
	result, err := c.api(ctx, "POST", path, map[string]any{"body": body}, false)
	if err != nil {
		return nil, c.wrapCLIError(ctx, err, result, "failed to create comment")
	}

	var comment apiComment
	if err := c.parseJSON(result.Stdout, &comment); err != nil {
		return nil, err
	}

	return &gh.CommentData{
		ID:        comment.ID,
		Body:      comment.Body,
		Author:    comment.User.Login,
		HTMLURL:   comment.HTMLURL,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// LockIssue locks an issue's conversation.
func (c *CLIProvider) LockIssue(ctx context.Context, owner, repo string, number int, reason string) error {
	var payload map[string]any
	if reason != "" {
		payload = map[string]any{"lock_reason": reason}
	}

	result, err := c.api(ctx, "PUT", issuePath(owner, repo, number)+"/lock", payload, false)
	if err != nil {
		return c.wrapCLIError(ctx, err, result, "failed to lock issue")
	}
	return nil
}

// UnlockIssue unlocks an issue's conversation.
func (c *CLIProvider) UnlockIssue(ctx context.Context, owner, repo string, number int) error {
	result, err := c.api(ctx, "DELETE", issuePath(owner, repo, number)+"/lock", nil, false)
	if err != nil {
		return c.wrapCLIError(ctx, err, result, "failed to unlock issue")
	}
	return nil
}

// command returns a single-use executor carrying ctx and the provider env.
func (c *CLIProvider) command(ctx context.Context) exec.Executor {
	cmd := c.wrapper.Clone().WithContext(ctx)
	if len(c.env) > 0 {
		cmd = cmd.WithEnv(c.env)
	}
	return cmd
}

// api runs `gh api` against path. A non-nil payload is sent as the JSON
// request body on stdin.
func (c *CLIProvider) api(ctx context.Context, method, path string, payload map[string]any, include bool) (*exec.Result, error) {
	args := []string{
		"api", path,
		"--method", method,
		"-H", "Accept: " + mediaType,
		"-H", "X-GitHub-Api-Version: " + apiVersion,
	}
	if include {
		args = append(args, "--include")
	}

	cmd := c.command(ctx)
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to marshal request")
		}
		args = append(args, "--input", "-")
		cmd = cmd.WithStdin(bytes.NewReader(data))
	}

	return cmd.Run(args...)
}

// parseIssue parses issue data from gh api JSON output.
func (c *CLIProvider) parseIssue(stdout string) (*gh.IssueData, error) {
	var issue apiIssue
	if err := c.parseJSON(stdout, &issue); err != nil {
		return nil, err
	}
	return issue.convert(), nil
}

// parseJSON unmarshals JSON output into the target.
func (c *CLIProvider) parseJSON(stdout string, target interface{}) error {
	if err := json.Unmarshal([]byte(stdout), target); err != nil {
		wrappedErr := errors.Wrap(err, errors.CodeInternal, "failed to parse JSON response")
		wrappedErr = errors.WithContext(wrappedErr, "stdout", stdout)
		return wrappedErr
	}
	return nil
}

// wrapCLIError wraps CLI execution errors with appropriate error types.
// gh reports API failures as "(HTTP NNN)" on stderr; that status decides the
// code exactly as it does for the SDK backend.
func (c *CLIProvider) wrapCLIError(ctx context.Context, err error, result *exec.Result, message string) error {
	if err == nil {
		return nil
	}

	var wrappedErr error
	switch {
	case ctx.Err() != nil:
		wrappedErr = errors.Wrap(err, errors.CodeUnavailable, message)
	case result != nil && httpStatusPattern.MatchString(result.Stderr):
		status, _ := strconv.Atoi(httpStatusPattern.FindStringSubmatch(result.Stderr)[1])
		detail := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(result.Stderr), "gh:"))
		wrappedErr = gh.WrapHTTPError(err, status, fmt.Sprintf("%s: %s", message, detail))
	case result != nil:
		wrappedErr = errors.Wrap(err, getErrorCodeFromResult(result), message)
	default:
		wrappedErr = errors.Wrap(err, errors.CodeExecutionFailed, message)
	}

	// Include stderr in error details if available
	if result != nil && result.Stderr != "" {
		wrappedErr = errors.WithContext(wrappedErr, "stderr", strings.TrimSpace(result.Stderr))
		wrappedErr = errors.WithContext(wrappedErr, "exit_code", result.ExitCode)
	}

	return wrappedErr
}

// getErrorCodeFromResult determines the error code for failures that carry
// no HTTP status.
func getErrorCodeFromResult(result *exec.Result) errors.ErrorCode {
	switch result.ExitCode {
	case 4:
		// gh exits 4 when authentication is required
		return errors.CodeUnauthorized
	case 1:
		stderr := strings.ToLower(result.Stderr)
		if strings.Contains(stderr, "could not resolve") || strings.Contains(stderr, "connection refused") ||
			strings.Contains(stderr, "timeout") {
			return errors.CodeUnavailable
		}
		if strings.Contains(stderr, "rate limit") {
			return errors.CodeRateLimit
		}
	}
	return errors.CodeExecutionFailed
}

// wrapAuthError wraps authentication errors from gh CLI.
func wrapAuthError(err error, result *exec.Result) error {
	if result == nil || result.ExitCode < 0 {
		notFound := errors.Wrap(err, errors.CodeExecutionFailed, "gh CLI not available")
		return errors.WithContext(notFound, "hint", "Install gh from https://cli.github.com or use --backend sdk")
	}

	// gh reports "not logged in" only when it has no credentials at all; a
	// rejected token is reported differently.
	code := errors.CodeUnauthorized
	message := "gh CLI not authenticated"
	if strings.Contains(strings.ToLower(result.Stderr), "not logged in") {
		code = errors.CodeMissingCredential
		message = "gh CLI has no credentials"
	}

	authErr := errors.Wrap(err, code, message)
	authErr = errors.WithContext(authErr, "hint", "Run 'gh auth login' or set GITHUB_TOKEN")
	if result.Stderr != "" {
		authErr = errors.WithContext(authErr, "stderr", strings.TrimSpace(result.Stderr))
	}
	return authErr
}

func issuesPath(owner, repo string) string {
	return fmt.Sprintf("repos/%s/%s/issues", owner, repo)
}

func issuePath(owner, repo string, number int) string {
	return fmt.Sprintf("repos/%s/%s/issues/%d", owner, repo, number)
}

// splitResponse separates the status line and headers printed by
// `gh api --include` from the body.
func splitResponse(stdout string) (textproto.MIMEHeader, string, error) {
	normalized := strings.ReplaceAll(stdout, "\r\n", "\n")
	head, body, found := strings.Cut(normalized, "\n\n")
	if !found || !strings.HasPrefix(head, "HTTP/") {
		err := errors.New(errors.CodeInternal, "failed to parse response headers")
		return nil, "", errors.WithContext(err, "stdout", stdout)
	}

	_, headers, _ := strings.Cut(head, "\n")
	reader := textproto.NewReader(bufio.NewReader(strings.NewReader(headers + "\n\n")))
	header, err := reader.ReadMIMEHeader()
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CodeInternal, "failed to parse response headers")
	}
	return header, body, nil
}

// nextPage returns the page number of the rel="next" link, or zero.
func nextPage(links []string) int {
	for _, value := range links {
		for _, link := range strings.Split(value, ",") {
			segments := strings.Split(strings.TrimSpace(link), ";")
			if len(segments) < 2 {
				continue
			}

			isNext := false
			for _, param := range segments[1:] {
				if strings.TrimSpace(param) == `rel="next"` {
					isNext = true
				}
			}
			if !isNext {
				continue
			}

			target := strings.Trim(strings.TrimSpace(segments[0]), "<>")
			u, err := url.Parse(target)
			if err != nil {
				continue
			}
			if page, err := strconv.Atoi(u.Query().Get("page")); err == nil {
				return page
			}
		}
	}
	return 0
}

type apiUser struct {
	Login string `json:"login"`
}

type apiLabel struct {
	Name string `json:"name"`
}

type apiIssue struct {
	Number           int               `json:"number"`
	Title            string            `json:"title"`
	Body             string            `json:"body"`
	State            string            `json:"state"`
	StateReason      string            `json:"state_reason"`
	User             apiUser           `json:"user"`
	Labels           []apiLabel        `json:"labels"`
	Assignees        []apiUser         `json:"assignees"`
	Milestone        *gh.MilestoneData `json:"milestone"`
	Comments         int               `json:"comments"`
	Locked           bool              `json:"locked"`
	ActiveLockReason string            `json:"active_lock_reason"`
	PullRequest      *json.RawMessage  `json:"pull_request"`
	HTMLURL          string            `json:"html_url"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	ClosedAt         *time.Time        `json:"closed_at"`
}

func (a *apiIssue) convert() *gh.IssueData {
	labels := make([]string, 0, len(a.Labels))
	for _, label := range a.Labels {
		labels = append(labels, label.Name)
	}
	assignees := make([]string, 0, len(a.Assignees))
	for _, user := range a.Assignees {
		assignees = append(assignees, user.Login)
	}

	return &gh.IssueData{
		Number:      a.Number,
		Title:       a.Title,
		Body:        a.Body,
		State:       a.State,
		StateReason: a.StateReason,
		Author:      a.User.Login,
		Labels:      labels,
		Assignees:   assignees,
		Milestone:   a.Milestone,
		Comments:    a.Comments,
		Locked:      a.Locked,
		LockReason:  a.ActiveLockReason,
		PullRequest: a.PullRequest != nil,
		HTMLURL:     a.HTMLURL,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		ClosedAt:    a.ClosedAt,
	}
}

type apiComment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	User      apiUser   `json:"user"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
}
