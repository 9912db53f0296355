package github

import (
	"context"
	"fmt"
	"time"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/notifier.go -pkg mocks . Notifier

// notifyTimeout bounds a single notification.
const notifyTimeout = 15 * time.Second

// Notifier receives a short text message after each successful mutation.
// Delivery is best effort: errors are logged and never returned to the
// caller of the mutation.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string) error { return nil }

// notify delivers text on a context detached from ctx's cancellation, so a
// mutation that finished right at its deadline is still reported.
func (r *Repository) notify(ctx context.Context, text string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := r.client.notifier.Notify(ctx, text); err != nil {
		r.client.logger.Debug("notification failed",
			"repository", r.FullName(),
			"error", err,
		)
	}
}

func issueMessage(repository, verb string, issue *IssueData) string {
	return fmt.Sprintf("[%s] %s issue #%d: %s\n%s", repository, verb, issue.Number, issue.Title, issue.HTMLURL)
}
