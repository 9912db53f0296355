package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jmgilman/issuectl/config"
	"github.com/jmgilman/issuectl/errors"
	"github.com/jmgilman/issuectl/git"
	"github.com/jmgilman/issuectl/github"
	"github.com/jmgilman/issuectl/github/providers/cli"
	"github.com/jmgilman/issuectl/github/providers/sdk"
	"github.com/jmgilman/issuectl/notify"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	json       bool
	verbose    bool
	noColor    bool
	configFile string
	backend    string
	apiURL     string
	owner      string
	timeout    time.Duration
}

// app holds the process streams and the factories a command uses to reach
// GitHub. Tests replace the factories.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	newProvider  func(cfg *config.Config) (github.Provider, error)
	newNotifier  func(cfg *config.Config) (github.Notifier, error)
	discoverRepo func() (string, error)
	now          func() time.Time

	flags  globalFlags
	cfg    *config.Config
	logger *slog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:        stdin,
		stdout:       stdout,
		stderr:       stderr,
		newProvider:  newProvider,
		newNotifier:  newNotifier,
		discoverRepo: discoverRepository,
		now:          time.Now,
	}
}

// run executes the command line and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	// Anything that is not a PlatformError comes from argument parsing.
	var platformErr errors.PlatformError
	if !errors.As(err, &platformErr) {
		a.output().usage(err)
		return exitUsage
	}

	a.output().error(err)
	return exitError
}

func (a *app) output() *printer {
	return newPrinter(a.stdout, a.stderr, a.flags.json, a.flags.noColor)
}

// setup resolves configuration and builds the logger. It runs once per
// command, after flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	flags := cmd.Root().PersistentFlags()
	cfg, err := config.NewLoader(
		config.WithConfigFile(a.flags.configFile),
		config.WithFlag(config.KeyBackend, flags.Lookup("backend")),
		config.WithFlag(config.KeyAPIURL, flags.Lookup("api-url")),
		config.WithFlag(config.KeyOwner, flags.Lookup("owner")),
		config.WithFlag(config.KeyTimeout, flags.Lookup("timeout")),
	).Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		"backend", cfg.Backend(),
		"api_url", cfg.APIURL(),
		"owner", cfg.Owner(),
		"notifications", cfg.SlackWebhookURL() != "",
		"timeout", cfg.Timeout(),
	)
	return nil
}

// repository resolves ref, or the repository of the working directory when
// ref is empty, into a Repository bound to a fresh client.
func (a *app) repository(cmd *cobra.Command, ref string) (*github.Repository, error) {
	if err := a.setup(cmd); err != nil {
		return nil, err
	}

	if ref == "" {
		inferred, err := a.discoverRepo()
		if err != nil {
			ambiguous := errors.Wrap(err, errors.CodeAmbiguousResource,
				"no repository given and none could be inferred from the git remote")
			return nil, errors.WithContext(ambiguous, "hint", "Pass owner/repo as the first argument")
		}
		a.logger.Debug("inferred repository from git remote", "repository", inferred)
		ref = inferred
	}

	provider, err := a.newProvider(a.cfg)
	if err != nil {
		return nil, err
	}
	notifier, err := a.newNotifier(a.cfg)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(provider, a.cfg.Owner(),
		github.WithNotifier(notifier),
		github.WithLogger(a.logger),
	)
	return client.Repository(ref)
}

// operationContext bounds a command by the configured timeout.
func (a *app) operationContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.Timeout())
}

func newProvider(cfg *config.Config) (github.Provider, error) {
	if cfg.Backend() == config.BackendGH {
		provider, err := cli.NewCLIProvider(
			cli.WithToken(cfg.Token()),
			cli.WithAPIURL(cfg.APIURL()),
		)
		if err != nil {
			return nil, err
		}
		return provider, nil
	}

	provider, err := sdk.NewSDKProvider(
		sdk.WithToken(cfg.Token()),
		sdk.WithBaseURL(cfg.APIURL()),
	)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

func newNotifier(cfg *config.Config) (github.Notifier, error) {
	if cfg.SlackWebhookURL() == "" {
		return notify.Discard{}, nil
	}
	slack, err := notify.NewSlack(cfg.SlackWebhookURL())
	if err != nil {
		return nil, err
	}
	return slack, nil
}

// discoverRepository returns owner/repo for the origin remote of the git
// repository enclosing the working directory.
func discoverRepository() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to get working directory")
	}
	return repositoryFromDir(cwd)
}

func repositoryFromDir(dir string) (string, error) {
	repo, err := git.Discover(dir)
	if err != nil {
		return "", err
	}
	return repo.GitHubRepository(git.DefaultRemote)
}
