package github

import "log/slog"

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithNotifier sets the notifier told about successful mutations.
func WithNotifier(n Notifier) ClientOption {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// IssueOption configures issue creation.
type IssueOption func(*CreateIssueOptions)

// WithLabels sets labels for an issue.
func WithLabels(labels ...string) IssueOption {
	return func(opts *CreateIssueOptions) {
		opts.Labels = labels
	}
}

// WithAssignees sets assignees for an issue.
func WithAssignees(assignees ...string) IssueOption {
	return func(opts *CreateIssueOptions) {
		opts.Assignees = assignees
	}
}

// WithMilestone sets the milestone number for an issue.
func WithMilestone(number int) IssueOption {
	return func(opts *CreateIssueOptions) {
		opts.Milestone = &number
	}
}
