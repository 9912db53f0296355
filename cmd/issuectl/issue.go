package main

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/jmgilman/issuectl/errors"
	"github.com/jmgilman/issuectl/github"
	"github.com/spf13/cobra"
)

// withRepository resolves the repository and runs fn under the configured
// timeout.
func (a *app) withRepository(cmd *cobra.Command, ref string, fn func(context.Context, *github.Repository) error) error {
	repo, err := a.repository(cmd, ref)
	if err != nil {
		return err
	}

	ctx, cancel := a.operationContext(cmd)
	defer cancel()
	return fn(ctx, repo)
}

func (a *app) createCommand() *cobra.Command {
	var (
		title     string
		body      string
		labels    []string
		assignees []string
		milestone int
	)

	cmd := &cobra.Command{
		Use:   "create [REPO] --title TITLE",
		Short: "Create an issue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []github.IssueOption{
				github.WithLabels(labels...),
				github.WithAssignees(assignees...),
			}
			if cmd.Flags().Changed("milestone") {
				opts = append(opts, github.WithMilestone(milestone))
			}

			return a.withRepository(cmd, repoArg(args), func(ctx context.Context, repo *github.Repository) error {
				issue, err := repo.CreateIssue(ctx, title, body, opts...)
				if err != nil {
					return err
				}
				return a.output().issue("Created", issue)
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "issue title")
	cmd.Flags().StringVarP(&body, "body", "b", "", "issue body")
	cmd.Flags().StringSliceVarP(&labels, "label", "l", nil, "label to apply (repeatable)")
	cmd.Flags().StringSliceVarP(&assignees, "assignee", "a", nil, "user to assign (repeatable)")
	cmd.Flags().IntVar(&milestone, "milestone", 0, "milestone number")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [REPO] NUMBER",
		Short: "Show an issue",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, number, err := issueArgs(args)
			if err != nil {
				return err
			}

			return a.withRepository(cmd, ref, func(ctx context.Context, repo *github.Repository) error {
				issue, err := repo.GetIssue(ctx, number)
				if err != nil {
					return err
				}
				return a.output().detail(issue)
			})
		},
	}
}

func (a *app) updateCommand() *cobra.Command {
	var (
		title, body                                 string
		addLabels, removeLabels, setLabels          []string
		addAssignees, removeAssignees, setAssignees []string
		clearLabels, clearAssignees                 bool
		milestone, state, reason                    string
	)

	cmd := &cobra.Command{
		Use:   "update [REPO] NUMBER",
		Short: "Update fields of an issue",
		Long: `Update fields of an issue.

Labels and assignees are either adjusted with --add-*/--remove-*, which read
the issue first, or replaced outright with --set-*/--clear-*.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, number, err := issueArgs(args)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			update := github.IssueUpdate{
				State:       state,
				StateReason: reason,
				Labels:      fieldUpdate(addLabels, removeLabels, setLabels, flags.Changed("set-label"), clearLabels),
				Assignees:   fieldUpdate(addAssignees, removeAssignees, setAssignees, flags.Changed("set-assignee"), clearAssignees),
			}
			if flags.Changed("title") {
				update.Title = &title
			}
			if flags.Changed("body") {
				update.Body = &body
			}
			if flags.Changed("milestone") {
				if milestone == github.FilterNone {
					update.ClearMilestone = true
				} else {
					n, err := strconv.Atoi(milestone)
					if err != nil {
						return usageErrorf("invalid milestone %q: must be a number or none", milestone)
					}
					update.Milestone = &n
				}
			}

			return a.withRepository(cmd, ref, func(ctx context.Context, repo *github.Repository) error {
				issue, err := repo.UpdateIssue(ctx, number, update)
				if err != nil {
					return err
				}
				return a.output().issue("Updated", issue)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&title, "title", "", "new title")
	flags.StringVar(&body, "body", "", "new body")
	flags.StringSliceVar(&addLabels, "add-label", nil, "label to add (repeatable)")
	flags.StringSliceVar(&removeLabels, "remove-label", nil, "label to remove (repeatable)")
	flags.StringSliceVar(&setLabels, "set-label", nil, "replace all labels (repeatable)")
	flags.BoolVar(&clearLabels, "clear-labels", false, "remove all labels")
	flags.StringSliceVar(&addAssignees, "add-assignee", nil, "user to assign (repeatable)")
	flags.StringSliceVar(&removeAssignees, "remove-assignee", nil, "user to unassign (repeatable)")
	flags.StringSliceVar(&setAssignees, "set-assignee", nil, "replace all assignees (repeatable)")
	flags.BoolVar(&clearAssignees, "clear-assignees", false, "remove all assignees")
	flags.StringVar(&milestone, "milestone", "", "milestone number, or none to clear it")
	flags.StringVar(&state, "state", "", "open or closed")
	flags.StringVar(&reason, "reason", "", "state reason: completed, not_planned or reopened")

	for _, field := range []string{"label", "assignee"} {
		set, reset := "set-"+field, "clear-"+field+"s"
		add, remove := "add-"+field, "remove-"+field
		cmd.MarkFlagsMutuallyExclusive(set, reset)
		cmd.MarkFlagsMutuallyExclusive(set, add)
		cmd.MarkFlagsMutuallyExclusive(set, remove)
		cmd.MarkFlagsMutuallyExclusive(reset, add)
		cmd.MarkFlagsMutuallyExclusive(reset, remove)
	}

	return cmd
}

// fieldUpdate turns the add/remove/set/clear flags of one field into a
// FieldUpdate. The flags are mutually exclusive by the time this runs.
func fieldUpdate(add, remove, set []string, setChanged, clearAll bool) github.FieldUpdate {
	switch {
	case clearAll:
		return github.Replace([]string{})
	case setChanged:
		return github.Replace(set)
	default:
		return github.AddRemove(add, remove)
	}
}

// stateCommand builds close and reopen, which differ only in the operation
// and the reasons they accept.
func (a *app) stateCommand(use, short, verb, reasonHelp string, apply func(*github.Repository, context.Context, int, string) (*github.Issue, error)) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   use + " [REPO] NUMBER",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, number, err := issueArgs(args)
			if err != nil {
				return err
			}

			return a.withRepository(cmd, ref, func(ctx context.Context, repo *github.Repository) error {
				issue, err := apply(repo, ctx, number, reason)
				if err != nil {
					return err
				}
				return a.output().issue(verb, issue)
			})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", reasonHelp)

	return cmd
}

func (a *app) closeCommand() *cobra.Command {
	return a.stateCommand("close", "Close an issue", "Closed",
		"completed or not_planned", (*github.Repository).CloseIssue)
}

func (a *app) reopenCommand() *cobra.Command {
	return a.stateCommand("reopen", "Reopen a closed issue", "Reopened",
		"reopened", (*github.Repository).ReopenIssue)
}

func (a *app) completeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [REPO] NUMBER",
		Short: "Close an issue as completed",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, number, err := issueArgs(args)
			if err != nil {
				return err
			}

			return a.withRepository(cmd, ref, func(ctx context.Context, repo *github.Repository) error {
				issue, err := repo.CompleteIssue(ctx, number)
				if err != nil {
					return err
				}
				return a.output().issue("Completed", issue)
			})
		},
	}
}

func (a *app) commentCommand() *cobra.Command {
	var body, bodyFile string

	cmd := &cobra.Command{
		Use:   "comment [REPO] NUMBER --body TEXT",
		Short: "Comment on an issue",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, number, err := issueArgs(args)
			if err != nil {
				return err
			}
			if bodyFile != "" {
				if body, err = a.readBody(bodyFile); err != nil {
					return err
				}
			}

			return a.withRepository(cmd, ref, func(ctx context.Context, repo *github.Repository) error {
				comment, err := repo.Comment(ctx, number, body)
				if err != nil {
					return err
				}
				return a.output().comment(number, comment)
			})
		},
	}

	cmd.Flags().StringVarP(&body, "body", "b", "", "comment text")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "read the comment from a file, or - for stdin")
	cmd.MarkFlagsOneRequired("body", "body-file")
	cmd.MarkFlagsMutuallyExclusive("body", "body-file")

	return cmd
}

func (a *app) readBody(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeInvalidInput, "failed to read comment body")
		return "", errors.WithContext(wrapped, "path", path)
	}
	return string(data), nil
}

func (a *app) lockCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "lock [REPO] NUMBER",
		Short: "Lock the conversation on an issue",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, number, err := issueArgs(args)
			if err != nil {
				return err
			}

			return a.withRepository(cmd, ref, func(ctx context.Context, repo *github.Repository) error {
				if err := repo.Lock(ctx, number, reason); err != nil {
					return err
				}
				return a.output().lock(lockState{Number: number, Locked: true, Reason: reason})
			})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", `off-topic, "too heated", resolved or spam`)

	return cmd
}

func (a *app) unlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock [REPO] NUMBER",
		Short: "Unlock the conversation on an issue",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, number, err := issueArgs(args)
			if err != nil {
				return err
			}

			return a.withRepository(cmd, ref, func(ctx context.Context, repo *github.Repository) error {
				if err := repo.Unlock(ctx, number); err != nil {
					return err
				}
				return a.output().lock(lockState{Number: number})
			})
		},
	}
}
