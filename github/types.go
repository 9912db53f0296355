package github

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmgilman/issuectl/errors"
)

// Issue states.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
)

// State reasons.
const (
	ReasonCompleted  = "completed"
	ReasonNotPlanned = "not_planned"
	ReasonReopened   = "reopened"
)

// Lock reasons accepted by the lock endpoint.
const (
	LockReasonOffTopic  = "off-topic"
	LockReasonTooHeated = "too heated"
	LockReasonResolved  = "resolved"
	LockReasonSpam      = "spam"
)

// Sentinels accepted by the assignee and milestone list filters.
const (
	FilterNone = "none"
	FilterAny  = "*"
)

// Sort keys and directions for ListIssuesOptions.
const (
	SortCreated  = "created"
	SortUpdated  = "updated"
	SortComments = "comments"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// maxPerPage is the largest page size the list endpoint accepts.
const maxPerPage = 100

// IssueData contains issue information from the provider.
type IssueData struct {
	// Identification
	Number int `json:"number"`

	// Content
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`

	// State and metadata
	State       string         `json:"state"`
	StateReason string         `json:"state_reason,omitempty"`
	Author      string         `json:"author"`
	Labels      []string       `json:"labels"`
	Assignees   []string       `json:"assignees"`
	Milestone   *MilestoneData `json:"milestone,omitempty"`
	Comments    int            `json:"comments"`
	Locked      bool           `json:"locked"`
	LockReason  string         `json:"active_lock_reason,omitempty"`

	// PullRequest is set for pull requests returned by the issues endpoints.
	PullRequest bool `json:"pull_request,omitempty"`

	// URL
	HTMLURL string `json:"html_url"`

	// Timestamps
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// MilestoneData identifies the milestone an issue belongs to.
type MilestoneData struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// CommentData contains issue comment information from the provider.
type CommentData struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
}

// IssuePage is one page of a paginated issue listing. NextPage is zero when
// the remote reports no further pages.
type IssuePage struct {
	Issues   []*IssueData
	NextPage int
}

// CreateIssueOptions contains options for creating an issue.
type CreateIssueOptions struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
	Milestone *int
}

// UpdateIssueOptions contains the fields of a partial issue update. Nil
// fields are left out of the request entirely.
type UpdateIssueOptions struct {
	Title       *string
	Body        *string
	State       *string
	StateReason *string
	Labels      *[]string
	Assignees   *[]string
	Milestone   *int

	// ClearMilestone sends an explicit null milestone. It wins over Milestone.
	ClearMilestone bool
}

// Payload returns the JSON request body for the update, containing only the
// fields that were set.
func (o UpdateIssueOptions) Payload() map[string]any {
	payload := make(map[string]any)
	if o.Title != nil {
		payload["title"] = *o.Title
	}
	if o.Body != nil {
		payload["body"] = *o.Body
	}
	if o.State != nil {
		payload["state"] = *o.State
	}
	if o.StateReason != nil {
		payload["state_reason"] = *o.StateReason
	}
	if o.Labels != nil {
		payload["labels"] = nonNil(*o.Labels)
	}
	if o.Assignees != nil {
		payload["assignees"] = nonNil(*o.Assignees)
	}
	switch {
	case o.ClearMilestone:
		payload["milestone"] = nil
	case o.Milestone != nil:
		payload["milestone"] = *o.Milestone
	}
	return payload
}

// ListIssuesOptions contains options for listing issues.
type ListIssuesOptions struct {
	// State filters by state: "open", "closed" or "all". Empty means "open".
	State string

	// Labels filters to issues carrying every listed label.
	Labels []string

	Creator string

	// Assignee is a username, "none" for unassigned, or "*" for any.
	Assignee string

	Mentioned string

	// Milestone is a milestone number, "none" or "*".
	Milestone string

	Sort      string
	Direction string

	// Since limits results to issues updated at or after this instant.
	Since *time.Time

	// Limit caps the number of issues yielded. It must be positive.
	Limit int

	// PerPage is the page size sent to the remote. It is derived from Limit
	// by the query engine and need not be set by callers.
	PerPage int
}

// Validate checks the enumerated filter values.
func (o ListIssuesOptions) Validate() error {
	switch o.State {
	case "", StateOpen, StateClosed, StateAll:
	default:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidState, "invalid state filter %q: must be open, closed or all", o.State),
			"state", o.State,
		)
	}

	switch o.Sort {
	case "", SortCreated, SortUpdated, SortComments:
	default:
		return newInvalidInputError("sort", "must be created, updated or comments")
	}

	switch o.Direction {
	case "", DirectionAsc, DirectionDesc:
	default:
		return newInvalidInputError("direction", "must be asc or desc")
	}

	if o.Milestone != "" && o.Milestone != FilterNone && o.Milestone != FilterAny {
		if n, err := strconv.Atoi(o.Milestone); err != nil || n <= 0 {
			return newInvalidInputError("milestone", "must be a milestone number, none or *")
		}
	}

	if o.Limit <= 0 {
		return newInvalidInputError("limit", fmt.Sprintf("must be positive, got %d", o.Limit))
	}

	return nil
}

// Query returns the filter parameters of the list endpoint, excluding page
// and per_page.
func (o ListIssuesOptions) Query() map[string]string {
	q := map[string]string{"state": StateOpen}
	if o.State != "" {
		q["state"] = o.State
	}
	if len(o.Labels) > 0 {
		q["labels"] = strings.Join(o.Labels, ",")
	}
	set := func(key, value string) {
		if value != "" {
			q[key] = value
		}
	}
	set("creator", o.Creator)
	set("assignee", o.Assignee)
	set("mentioned", o.Mentioned)
	set("milestone", o.Milestone)
	set("sort", o.Sort)
	set("direction", o.Direction)
	if o.Since != nil {
		q["since"] = FormatTimestamp(*o.Since)
	}
	return q
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
