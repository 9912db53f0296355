package github

import "context"

// IssueIterator lazily walks the pages of an issue listing.
//
// Items are yielded in the order the API returns them. Pull requests are
// dropped before they count against the limit, and the next page is only
// requested once the current one has been consumed. Iteration stops at the
// limit or when the API reports no further pages. An iterator cannot be
// restarted and is not safe for concurrent use.
type IssueIterator struct {
	repo *Repository
	opts ListIssuesOptions

	buffer  []*IssueData
	page    int // next page to fetch; 0 once the listing is exhausted
	yielded int
	fetches int
	started bool
	err     error
}

func newIssueIterator(repo *Repository, opts ListIssuesOptions) *IssueIterator {
	opts.PerPage = min(max(opts.Limit, 1), maxPerPage)
	return &IssueIterator{
		repo: repo,
		opts: opts,
		page: 1,
	}
}

// Next returns the next issue, or nil, nil once the listing is exhausted or
// the limit is reached. After an error every call returns the same error.
func (it *IssueIterator) Next(ctx context.Context) (*Issue, error) {
	if it.err != nil {
		return nil, it.err
	}
	if !it.started {
		it.started = true
		if err := it.opts.Validate(); err != nil {
			it.err = err
			return nil, err
		}
	}

	for it.yielded < it.opts.Limit {
		if len(it.buffer) > 0 {
			data := it.buffer[0]
			it.buffer = it.buffer[1:]
			it.yielded++
			return it.repo.wrap(data), nil
		}
		if it.page == 0 {
			return nil, nil
		}
		if err := it.fetch(ctx); err != nil {
			it.err = err
			return nil, err
		}
	}

	return nil, nil
}

// All collects the remaining issues.
func (it *IssueIterator) All(ctx context.Context) ([]*Issue, error) {
	var issues []*Issue
	for {
		issue, err := it.Next(ctx)
		if err != nil {
			return issues, err
		}
		if issue == nil {
			return issues, nil
		}
		issues = append(issues, issue)
	}
}

// Pages returns the number of page requests issued so far.
func (it *IssueIterator) Pages() int {
	return it.fetches
}

func (it *IssueIterator) fetch(ctx context.Context) error {
	r := it.repo
	current := it.page
	it.fetches++

	result, err := r.client.provider.ListIssues(ctx, r.owner, r.name, it.opts, current)
	if err != nil {
		return wrapRemote(err, "list issues", r.FullName(), 0)
	}
	if result == nil {
		it.page = 0
		return nil
	}

	skipped := 0
	for _, data := range result.Issues {
		if data == nil {
			continue
		}
		if data.PullRequest {
			skipped++
			continue
		}
		it.buffer = append(it.buffer, data)
	}

	// A next page that does not move forward would loop forever.
	it.page = result.NextPage
	if it.page <= current {
		it.page = 0
	}

	r.client.logger.Debug("fetched issue page",
		"repository", r.FullName(),
		"page", current,
		"items", len(result.Issues),
		"pull_requests", skipped,
		"next_page", it.page,
	)
	return nil
}
