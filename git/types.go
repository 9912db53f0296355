package git

import (
	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote consulted when no other is named.
const DefaultRemote = "origin"

// Repository wraps a go-git repository with platform conventions.
// It stores both the underlying go-git repository and a billy filesystem
// for all I/O operations.
type Repository struct {
	path string
	repo *gogit.Repository
	fs   billy.Filesystem
}

// Remote is a simple value type representing a Git remote.
type Remote struct {
	Name string
	URLs []string
}

// RemoteOptions configures remote management.
type RemoteOptions struct {
	Name string
	URL  string
}

// RepositoryOption configures Init, Open and Discover.
type RepositoryOption func(*repositoryOptions)

// repositoryOptions holds the configuration for repository access.
type repositoryOptions struct {
	fs billy.Filesystem
}

// WithFilesystem sets the billy filesystem to use for repository operations.
// Paths passed to Init, Open and Discover are resolved against it. If not
// provided, defaults to the local filesystem.
//
// Example:
//
//	repo, err := git.Init("/repo", git.WithFilesystem(memfs.New()))
func WithFilesystem(fs billy.Filesystem) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.fs = fs
	}
}
