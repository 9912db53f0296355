package git

import (
	"strings"

	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/jmgilman/issuectl/errors"
)

// ListRemotes returns all configured remotes.
//
// Example:
//
//	remotes, err := repo.ListRemotes()
//	for _, remote := range remotes {
//	    fmt.Printf("%s: %v\n", remote.Name, remote.URLs)
//	}
func (r *Repository) ListRemotes() ([]Remote, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, wrapError(err, "failed to list remotes")
	}

	result := make([]Remote, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		result = append(result, Remote{
			Name: cfg.Name,
			URLs: cfg.URLs,
		})
	}

	return result, nil
}

// Remote returns the named remote. Returns a NOT_FOUND error if it does not
// exist.
func (r *Repository) Remote(name string) (*Remote, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return nil, errors.WithContext(wrapError(err, "failed to get remote"), "remote", name)
	}

	cfg := remote.Config()
	return &Remote{
		Name: cfg.Name,
		URLs: cfg.URLs,
	}, nil
}

// AddRemote adds a new remote to the repository configuration.
//
// Example:
//
//	err := repo.AddRemote(git.RemoteOptions{
//	    Name: "upstream",
//	    URL:  "https://github.com/upstream/repo",
//	})
func (r *Repository) AddRemote(opts RemoteOptions) error {
	_, err := r.repo.CreateRemote(&config.RemoteConfig{
		Name: opts.Name,
		URLs: []string{opts.URL},
	})
	if err != nil {
		return wrapError(err, "failed to add remote")
	}

	return nil
}

// GitHubRepository returns the "owner/repo" reference of the named remote's
// fetch URL.
func (r *Repository) GitHubRepository(remoteName string) (string, error) {
	remote, err := r.Remote(remoteName)
	if err != nil {
		return "", err
	}
	if len(remote.URLs) == 0 {
		err := errors.Newf(errors.CodeNotFound, "remote %q has no URL", remoteName)
		return "", errors.WithContext(err, "remote", remoteName)
	}

	owner, name, err := ParseRemoteURL(remote.URLs[0])
	if err != nil {
		return "", errors.WithContext(err, "remote", remoteName)
	}
	return owner + "/" + name, nil
}

// ParseRemoteURL extracts the owner and repository name from a remote URL.
func ParseRemoteURL(rawURL string) (string, string, error) {
	invalid := func(reason string) error {
		err := errors.Newf(errors.CodeInvalidInput, "cannot infer repository from remote URL %q: %s", rawURL, reason)
		return errors.WithContext(err, "url", rawURL)
	}

	if strings.TrimSpace(rawURL) == "" {
		return "", "", invalid("empty URL")
	}

	endpoint, err := transport.NewEndpoint(rawURL)
	if err != nil {
		return "", "", invalid(err.Error())
	}
	if endpoint.Protocol == "file" {
		return "", "", invalid("local path remotes are not supported")
	}

	path := strings.Trim(endpoint.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", invalid("expected an owner/repo path")
	}

	return parts[0], parts[1], nil
}
