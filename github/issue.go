package github

// Issue represents a GitHub issue.
//
// Issue instances are returned by Repository operations:
//
//	issue, err := repo.CreateIssue(ctx, "Bug title", "Description",
//	    github.WithLabels("bug"),
//	)
//	fmt.Println(issue.Number(), issue.HTMLURL())
type Issue struct {
	repo *Repository
	data *IssueData
}

// Number returns the issue number.
func (i *Issue) Number() int {
	return i.data.Number
}

// Title returns the issue title.
func (i *Issue) Title() string {
	return i.data.Title
}

// Body returns the issue body/description.
func (i *Issue) Body() string {
	return i.data.Body
}

// State returns the issue state ("open" or "closed").
func (i *Issue) State() string {
	return i.data.State
}

// StateReason returns why the issue is in its current state, if known.
func (i *Issue) StateReason() string {
	return i.data.StateReason
}

// Author returns the username of the issue creator.
func (i *Issue) Author() string {
	return i.data.Author
}

// Labels returns the list of labels applied to the issue.
func (i *Issue) Labels() []string {
	return i.data.Labels
}

// Assignees returns the list of usernames assigned to the issue.
func (i *Issue) Assignees() []string {
	return i.data.Assignees
}

// Milestone returns the milestone, or nil if the issue has none.
func (i *Issue) Milestone() *MilestoneData {
	return i.data.Milestone
}

// HTMLURL returns the URL to view the issue on GitHub.
func (i *Issue) HTMLURL() string {
	return i.data.HTMLURL
}

// IsClosed returns true if the issue is closed.
func (i *Issue) IsClosed() bool {
	return i.data.State == StateClosed
}

// IsOpen returns true if the issue is open.
func (i *Issue) IsOpen() bool {
	return i.data.State == StateOpen
}

// IsLocked returns true if the conversation is locked.
func (i *Issue) IsLocked() bool {
	return i.data.Locked
}

// Repository returns the repository the issue belongs to.
func (i *Issue) Repository() *Repository {
	return i.repo
}

// Data returns the underlying issue data.
func (i *Issue) Data() *IssueData {
	return i.data
}
