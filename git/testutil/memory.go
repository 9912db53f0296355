// Package testutil provides in-memory testing utilities for the git package.
package testutil

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/jmgilman/issuectl/git"
)

// Test repository URLs.
const (
	// TestRepoURL is a sample HTTPS repository URL for testing.
	TestRepoURL = "https://github.com/test/repo.git"

	// TestRepoSSHURL is a sample SSH repository URL for testing.
	TestRepoSSHURL = "git@github.com:test/repo.git"
)

// RepoPath is where NewMemoryRepo places the repository.
const RepoPath = "/work/repo"

// NewMemoryRepo creates a new in-memory Git repository at RepoPath.
//
// The returned filesystem is the root memfs, so callers can create paths
// above and below the repository.
//
// Example:
//
//	repo, fs, err := testutil.NewMemoryRepo()
//	if err != nil {
//	    t.Fatal(err)
//	}
func NewMemoryRepo() (*git.Repository, billy.Filesystem, error) {
	fs := memfs.New()

	repo, err := git.Init(RepoPath, git.WithFilesystem(fs))
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from git package are already wrapped
		return nil, nil, err
	}

	return repo, fs, nil
}

// NewMemoryRepoWithRemote creates an in-memory repository whose origin
// remote points at url.
func NewMemoryRepoWithRemote(url string) (*git.Repository, billy.Filesystem, error) {
	repo, fs, err := NewMemoryRepo()
	if err != nil {
		return nil, nil, err
	}

	if err := repo.AddRemote(git.RemoteOptions{Name: git.DefaultRemote, URL: url}); err != nil {
		//nolint:wrapcheck // Test utility - errors from git package are already wrapped
		return nil, nil, err
	}

	return repo, fs, nil
}
