// Package notify delivers short text notifications about issue changes.
//
// Slack posts to an incoming webhook. Discard drops every message and is used
// when no webhook is configured. Both satisfy github.Notifier.
package notify

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/jmgilman/issuectl/errors"
	"github.com/slack-go/slack"
)

// DefaultTimeout bounds a single webhook delivery.
const DefaultTimeout = 15 * time.Second

// Option configures a Slack notifier.
type Option func(*Slack)

// WithHTTPClient sets the HTTP client used for webhook deliveries.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Slack) {
		if client != nil {
			s.client = client
		}
	}
}

// Slack posts messages to a Slack incoming webhook.
type Slack struct {
	webhookURL string
	client     *http.Client
}

// NewSlack creates a notifier for the given incoming webhook URL.
func NewSlack(webhookURL string, opts ...Option) (*Slack, error) {
	u, err := url.Parse(webhookURL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		invalid := errors.New(errors.CodeInvalidConfig, "invalid Slack webhook URL")
		return nil, errors.WithContext(invalid, "field", "slack_webhook_url")
	}

	s := &Slack{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Notify posts text as {"text": ...}. Any transport failure or non-200
// response is returned as a NOTIFICATION_FAILED error.
func (s *Slack) Notify(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.client, msg); err != nil {
		wrapped := errors.Wrap(err, errors.CodeNotificationFailed, "failed to post Slack notification")
		var statusErr slack.StatusCodeError
		if errors.As(err, &statusErr) {
			wrapped = errors.WithContext(wrapped, "status", statusErr.Code)
		}
		return wrapped
	}
	return nil
}

// Discard is a notifier that drops every message.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(context.Context, string) error {
	return nil
}
