package main

import (
	"fmt"
	"strconv"

	"github.com/jmgilman/issuectl/config"
	"github.com/spf13/cobra"
)

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "issuectl",
		Short: "Create, update and query GitHub issues",
		Long: `issuectl manages GitHub issues from the command line.

REPO is owner/repo, or a bare repository name when GITHUB_OWNER is set. When
REPO is omitted it is taken from the origin remote of the git repository in
the working directory. Successful changes are announced to Slack when
SLACK_WEBHOOK_URL is set.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.BoolVar(&a.flags.json, "json", false, "print raw JSON instead of a summary")
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging on stderr")
	flags.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&a.flags.configFile, "config", "", "read settings from a config file")
	flags.StringVar(&a.flags.backend, "backend", config.DefaultBackend, "GitHub backend: sdk or gh")
	flags.StringVar(&a.flags.apiURL, "api-url", config.DefaultAPIURL, "GitHub API base URL")
	flags.StringVar(&a.flags.owner, "owner", "", "default owner for bare repository names")
	flags.DurationVar(&a.flags.timeout, "timeout", config.DefaultTimeout, "timeout for each operation")

	root.AddCommand(
		a.createCommand(),
		a.getCommand(),
		a.updateCommand(),
		a.closeCommand(),
		a.completeCommand(),
		a.reopenCommand(),
		a.commentCommand(),
		a.lockCommand(),
		a.unlockCommand(),
		a.listCommand(),
	)

	return root
}

// issueArgs splits [REPO] N into the repository reference and issue number.
func issueArgs(args []string) (string, int, error) {
	ref, raw := "", args[0]
	if len(args) == 2 {
		ref, raw = args[0], args[1]
	}
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		return "", 0, usageErrorf("invalid issue number %q", raw)
	}
	return ref, number, nil
}

// repoArg returns the optional repository reference.
func repoArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// usageError marks a problem with the command line itself.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}
