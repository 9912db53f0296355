package github

import (
	"log/slog"
	"strings"

	"github.com/jmgilman/issuectl/errors"
)

// Client provides high-level GitHub issue operations.
// It serves as the main entry point for the mutation and query engine.
//
// Example usage:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken(token))
//	if err != nil {
//	    return err
//	}
//
//	slack, err := notify.NewSlack(webhookURL)
//	if err != nil {
//	    return err
//	}
//
//	client := github.NewClient(provider, "myorg",
//	    github.WithNotifier(slack),
//	)
//
//	repo, err := client.Repository("myrepo")
type Client struct {
	provider Provider
	owner    string // default owner for short repository references
	notifier Notifier
	logger   *slog.Logger
}

// NewClient creates a new client with the specified provider.
// The owner parameter is the default owner used to expand a bare repository
// name; it may be empty, in which case every reference must be owner/repo.
func NewClient(provider Provider, owner string, opts ...ClientOption) *Client {
	c := &Client{
		provider: provider,
		owner:    owner,
		notifier: nopNotifier{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repository returns a Repository for ref, which is either "owner/repo" or a
// bare repository name expanded with the client's default owner.
//
// Note: This method does not contact GitHub.
func (c *Client) Repository(ref string) (*Repository, error) {
	owner, name, err := ParseRepository(ref, c.owner)
	if err != nil {
		return nil, err
	}
	return &Repository{
		client: c,
		owner:  owner,
		name:   name,
	}, nil
}

// Provider returns the underlying Provider.
func (c *Client) Provider() Provider {
	return c.provider
}

// Owner returns the default owner for this client.
func (c *Client) Owner() string {
	return c.owner
}

// ParseRepository splits a repository reference into owner and name. A bare
// name is expanded with defaultOwner; without one the reference is ambiguous.
func ParseRepository(ref, defaultOwner string) (owner, name string, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", newInvalidInputError("repository", "must not be empty")
	}

	owner, name, found := strings.Cut(ref, "/")
	if !found {
		if defaultOwner == "" {
			return "", "", errors.WithContext(
				errors.Newf(errors.CodeAmbiguousResource,
					"repository %q has no owner: use owner/repo or configure a default owner", ref),
				"repository", ref,
			)
		}
		return defaultOwner, ref, nil
	}

	if owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", newInvalidInputError("repository", "must be owner/repo, got "+ref)
	}
	return owner, name, nil
}
