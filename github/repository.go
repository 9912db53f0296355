package github

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jmgilman/issuectl/errors"
)

// Repository provides issue operations scoped to one repository.
//
// Repository instances are created through a Client:
//
//	client := github.NewClient(provider, "myorg")
//	repo, err := client.Repository("myrepo")
//
// Every mutation validates its input before contacting GitHub, so an invalid
// request never causes a partial change. After a successful mutation the
// client's Notifier is told about it.
type Repository struct {
	client *Client
	owner  string
	name   string
}

// IssueUpdate describes a partial update of an issue. Fields left at their
// zero value are not changed.
type IssueUpdate struct {
	Title *string
	Body  *string

	Labels    FieldUpdate
	Assignees FieldUpdate

	// Milestone sets the milestone by number. ClearMilestone removes it and
	// takes precedence.
	Milestone      *int
	ClearMilestone bool

	// State is "open", "closed" or empty. A StateReason given without a
	// State implies one: "reopened" opens, anything else closes.
	State       string
	StateReason string
}

func (u IssueUpdate) isEmpty() bool {
	return u.Title == nil && u.Body == nil &&
		u.Labels.IsNoChange() && u.Assignees.IsNoChange() &&
		u.Milestone == nil && !u.ClearMilestone &&
		u.State == "" && u.StateReason == ""
}

// Owner returns the repository owner (organization or username).
func (r *Repository) Owner() string {
	return r.owner
}

// Name returns the repository name (without owner).
func (r *Repository) Name() string {
	return r.name
}

// FullName returns the full repository name (owner/name).
func (r *Repository) FullName() string {
	return fmt.Sprintf("%s/%s", r.owner, r.name)
}

// CreateIssue creates a new issue in the repository.
//
// Example:
//
//	issue, err := repo.CreateIssue(ctx, "Bug title", "Description",
//	    github.WithLabels("bug", "high-priority"),
//	    github.WithAssignees("user1"),
//	)
func (r *Repository) CreateIssue(ctx context.Context, title, body string, opts ...IssueOption) (*Issue, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newInvalidInputError("title", "must not be empty")
	}

	createOpts := CreateIssueOptions{
		Title: title,
		Body:  body,
	}
	for _, opt := range opts {
		opt(&createOpts)
	}
	if createOpts.Milestone != nil && *createOpts.Milestone <= 0 {
		return nil, newInvalidInputError("milestone", "must be a positive number")
	}

	data, err := r.client.provider.CreateIssue(ctx, r.owner, r.name, createOpts)
	if err != nil {
		return nil, wrapRemote(err, "create issue", r.FullName(), 0)
	}

	r.notify(ctx, issueMessage(r.FullName(), "Created", data))
	return r.wrap(data), nil
}

// GetIssue fetches a single issue. Pull requests share the issue number
// space and are returned too; check Data().PullRequest.
func (r *Repository) GetIssue(ctx context.Context, number int) (*Issue, error) {
	if err := validateNumber(number); err != nil {
		return nil, err
	}

	data, err := r.client.provider.GetIssue(ctx, r.owner, r.name, number)
	if err != nil {
		return nil, wrapRemote(err, "get issue", r.FullName(), number)
	}
	return r.wrap(data), nil
}

// UpdateIssue applies a partial update. Label and assignee add/remove
// instructions are resolved against a snapshot read just before the write;
// replacements are sent without reading.
//
// Example:
//
//	issue, err := repo.UpdateIssue(ctx, 42, github.IssueUpdate{
//	    Labels: github.AddRemove([]string{"triaged"}, []string{"needs-triage"}),
//	})
func (r *Repository) UpdateIssue(ctx context.Context, number int, update IssueUpdate) (*Issue, error) {
	return r.update(ctx, OpUpdate, number, update, "Updated")
}

// CloseIssue closes an issue with an optional reason ("completed" or
// "not_planned").
func (r *Repository) CloseIssue(ctx context.Context, number int, reason string) (*Issue, error) {
	return r.update(ctx, OpClose, number, IssueUpdate{State: StateClosed, StateReason: reason}, "Closed")
}

// CompleteIssue closes an issue as completed.
func (r *Repository) CompleteIssue(ctx context.Context, number int) (*Issue, error) {
	return r.update(ctx, OpClose, number, IssueUpdate{State: StateClosed, StateReason: ReasonCompleted}, "Completed")
}

// ReopenIssue reopens an issue with an optional reason ("reopened").
func (r *Repository) ReopenIssue(ctx context.Context, number int, reason string) (*Issue, error) {
	return r.update(ctx, OpReopen, number, IssueUpdate{State: StateOpen, StateReason: reason}, "Reopened")
}

// Comment adds a comment to an issue.
func (r *Repository) Comment(ctx context.Context, number int, body string) (*CommentData, error) {
	if err := validateNumber(number); err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, newInvalidInputError("body", "must not be empty")
	}

	comment, err := r.client.provider.CreateComment(ctx, r.owner, r.name, number, body)
	if err != nil {
		return nil, wrapRemote(err, "comment on issue", r.FullName(), number)
	}

	r.notify(ctx, fmt.Sprintf("[%s] Commented on issue #%d\n%s", r.FullName(), number, comment.HTMLURL))
	return comment, nil
}

// Lock locks the conversation on an issue. reason is optional and must be
// one of "off-topic", "too heated", "resolved" or "spam".
func (r *Repository) Lock(ctx context.Context, number int, reason string) error {
	if err := validateNumber(number); err != nil {
		return err
	}
	if err := ValidateLockReason(reason); err != nil {
		return err
	}

	if err := r.client.provider.LockIssue(ctx, r.owner, r.name, number, reason); err != nil {
		return wrapRemote(err, "lock issue", r.FullName(), number)
	}

	text := fmt.Sprintf("[%s] Locked issue #%d", r.FullName(), number)
	if reason != "" {
		text += " as " + reason
	}
	r.notify(ctx, text)
	return nil
}

// Unlock unlocks the conversation on an issue.
func (r *Repository) Unlock(ctx context.Context, number int) error {
	if err := validateNumber(number); err != nil {
		return err
	}

	if err := r.client.provider.UnlockIssue(ctx, r.owner, r.name, number); err != nil {
		return wrapRemote(err, "unlock issue", r.FullName(), number)
	}

	r.notify(ctx, fmt.Sprintf("[%s] Unlocked issue #%d", r.FullName(), number))
	return nil
}

// ListIssues returns a lazy iterator over the repository's issues. Pull
// requests are skipped. No request is made until the first call to Next.
//
// Example:
//
//	it := repo.ListIssues(github.ListIssuesOptions{State: github.StateOpen, Limit: 20})
//	for {
//	    issue, err := it.Next(ctx)
//	    if err != nil || issue == nil {
//	        break
//	    }
//	    fmt.Println(issue.Title())
//	}
func (r *Repository) ListIssues(opts ListIssuesOptions) *IssueIterator {
	return newIssueIterator(r, opts)
}

// update is the shared path for update, close, complete and reopen.
func (r *Repository) update(ctx context.Context, op Operation, number int, update IssueUpdate, verb string) (*Issue, error) {
	if err := validateNumber(number); err != nil {
		return nil, err
	}
	if update.isEmpty() {
		return nil, errors.WithContext(
			errors.New(errors.CodeInvalidInput, "nothing to update: no field was given"),
			"issue", number,
		)
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, newInvalidInputError("title", "must not be empty")
	}
	if update.Milestone != nil && *update.Milestone <= 0 {
		return nil, newInvalidInputError("milestone", "must be a positive number")
	}
	if err := ValidateTransition(op, update.State, update.StateReason); err != nil {
		return nil, errors.WithContext(err, "issue", number)
	}

	opts := UpdateIssueOptions{
		Title:          update.Title,
		Body:           update.Body,
		Milestone:      update.Milestone,
		ClearMilestone: update.ClearMilestone,
	}

	state := update.State
	if state == "" {
		state = ImpliedState(update.StateReason)
	}
	if state != "" {
		opts.State = &state
	}
	if update.StateReason != "" {
		reason := update.StateReason
		opts.StateReason = &reason
	}

	var current *IssueData
	if update.Labels.NeedsSnapshot() || update.Assignees.NeedsSnapshot() {
		r.client.logger.Debug("reading issue before update",
			"repository", r.FullName(),
			"issue", number,
		)
		snapshot, err := r.client.provider.GetIssue(ctx, r.owner, r.name, number)
		if err != nil {
			return nil, wrapRemote(err, "get issue", r.FullName(), number)
		}
		current = snapshot
	}

	if labels, _, changed := update.Labels.Resolve(snapshotField(current, func(d *IssueData) []string { return d.Labels })); changed {
		opts.Labels = &labels
	}
	if assignees, _, changed := update.Assignees.Resolve(snapshotField(current, func(d *IssueData) []string { return d.Assignees })); changed {
		opts.Assignees = &assignees
	}

	r.client.logger.Debug("updating issue",
		"repository", r.FullName(),
		"issue", number,
		"fields", payloadFields(opts),
	)

	data, err := r.client.provider.UpdateIssue(ctx, r.owner, r.name, number, opts)
	if err != nil {
		return nil, wrapRemote(err, string(op)+" issue", r.FullName(), number)
	}

	r.notify(ctx, issueMessage(r.FullName(), verb, data))
	return r.wrap(data), nil
}

func (r *Repository) wrap(data *IssueData) *Issue {
	return &Issue{repo: r, data: data}
}

func snapshotField(data *IssueData, field func(*IssueData) []string) []string {
	if data == nil {
		return nil
	}
	return field(data)
}

func payloadFields(opts UpdateIssueOptions) []string {
	payload := opts.Payload()
	fields := make([]string, 0, len(payload))
	for k := range payload {
		fields = append(fields, k)
	}
	slices.Sort(fields)
	return fields
}

func validateNumber(number int) error {
	if number <= 0 {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "issue number must be positive, got %d", number),
			"issue", number,
		)
	}
	return nil
}
