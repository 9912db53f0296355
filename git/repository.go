package git

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/jmgilman/issuectl/errors"
)

func applyOptions(opts []RepositoryOption) *repositoryOptions {
	options := &repositoryOptions{
		fs: osfs.New("/"),
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Init creates a new non-bare Git repository at the specified path.
//
// Returns the initialized Repository or an error if initialization fails.
// A repository that already exists at path yields a CONFLICT error.
//
// Example:
//
//	// Create repository with an in-memory filesystem (for testing)
//	repo, err := git.Init("/repo", git.WithFilesystem(memfs.New()))
func Init(path string, opts ...RepositoryOption) (*Repository, error) {
	fs := applyOptions(opts).fs

	if err := fs.MkdirAll(path, 0o755); err != nil {
		return nil, wrapError(err, "failed to create repository directory")
	}

	scopedFs, err := fs.Chroot(path)
	if err != nil {
		return nil, wrapError(err, "failed to scope filesystem to path")
	}

	dotGitFs, err := scopedFs.Chroot(gogit.GitDirName)
	if err != nil {
		return nil, wrapError(err, "failed to create .git filesystem")
	}

	storage := filesystem.NewStorage(dotGitFs, cache.NewObjectLRUDefault())
	repo, err := gogit.Init(storage, scopedFs)
	if err != nil {
		return nil, wrapError(err, "failed to initialize repository")
	}

	return &Repository{
		path: path,
		repo: repo,
		fs:   scopedFs,
	}, nil
}

// Open opens an existing Git repository whose working tree is rooted at path.
//
// Returns a NOT_FOUND error if path holds no repository.
//
// Example:
//
//	repo, err := git.Open("/path/to/repo")
func Open(path string, opts ...RepositoryOption) (*Repository, error) {
	return open(applyOptions(opts).fs, path)
}

// Discover opens the repository containing start, searching start and then
// each parent directory for a .git directory.
//
// Returns a NOT_FOUND error when no enclosing repository exists.
//
// Example:
//
//	cwd, _ := os.Getwd()
//	repo, err := git.Discover(cwd)
func Discover(start string, opts ...RepositoryOption) (*Repository, error) {
	fs := applyOptions(opts).fs

	dir := filepath.Clean(start)
	for {
		if stat, err := fs.Stat(filepath.Join(dir, gogit.GitDirName)); err == nil && stat.IsDir() {
			return open(fs, dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			err := errors.New(errors.CodeNotFound, "not a git repository (or any of the parent directories)")
			return nil, errors.WithContext(err, "path", start)
		}
		dir = parent
	}
}

func open(fs billy.Filesystem, path string) (*Repository, error) {
	scopedFs, err := fs.Chroot(path)
	if err != nil {
		return nil, wrapError(err, "failed to scope filesystem to path")
	}

	dotGitFs, err := scopedFs.Chroot(gogit.GitDirName)
	if err != nil {
		return nil, wrapError(err, "failed to scope filesystem to .git")
	}

	storage := filesystem.NewStorage(dotGitFs, cache.NewObjectLRUDefault())
	repo, err := gogit.Open(storage, scopedFs)
	if err != nil {
		return nil, errors.WithContext(wrapError(err, "failed to open repository"), "path", path)
	}

	return &Repository{
		path: path,
		repo: repo,
		fs:   scopedFs,
	}, nil
}

// Path returns the root of the repository's working tree.
func (r *Repository) Path() string {
	return r.path
}

// Underlying returns the underlying go-git Repository for advanced operations
// not covered by this wrapper.
func (r *Repository) Underlying() *gogit.Repository {
	return r.repo
}

// Filesystem returns the billy.Filesystem scoped to the working tree.
func (r *Repository) Filesystem() billy.Filesystem {
	return r.fs
}
