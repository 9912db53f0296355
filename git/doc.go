// Package git provides a thin wrapper around go-git for locating a local
// repository and resolving the GitHub repository behind one of its remotes.
//
// issuectl uses it to infer the [owner/]repo argument when a command is run
// inside a clone:
//
//	cwd, _ := os.Getwd()
//	repo, err := git.Discover(cwd)
//	if err != nil {
//	    return err
//	}
//	ref, err := repo.GitHubRepository(git.DefaultRemote)
//	// ref == "octo/hello"
//
// # Billy Filesystem
//
// All repository access goes through the go-billy filesystem abstraction. By
// default the local OS filesystem (osfs) is used; tests pass an in-memory
// filesystem (memfs) with WithFilesystem. Underlying and Filesystem are escape
// hatches to the go-git repository and its scoped filesystem.
//
// # Remote URLs
//
// ParseRemoteURL accepts the URL forms git itself understands for a remote:
//
//	https://github.com/octo/hello.git
//	ssh://git@github.com/octo/hello.git
//	git@github.com:octo/hello.git
//
// The host is not checked, so GitHub Enterprise remotes resolve too. Local
// path remotes are rejected.
//
// # Errors
//
// Errors use the issuectl errors package. A missing repository or remote is
// NOT_FOUND; an unparseable remote URL is INVALID_INPUT.
package git
