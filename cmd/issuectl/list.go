package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jmgilman/issuectl/github"
	"github.com/spf13/cobra"
)

// defaultListLimit is the number of issues list prints without --limit.
const defaultListLimit = 50

// enumValue is a string flag restricted to a fixed set of values. A value
// outside the set is rejected while flags are parsed.
type enumValue struct {
	value   string
	allowed []string
}

func newEnumValue(value string, allowed ...string) *enumValue {
	return &enumValue{value: value, allowed: allowed}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(value string) error {
	if !slices.Contains(e.allowed, value) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
	}
	e.value = value
	return nil
}

func (e *enumValue) Type() string { return "string" }

func (a *app) listCommand() *cobra.Command {
	var (
		opts  github.ListIssuesOptions
		since string
	)
	state := newEnumValue(github.StateOpen, github.StateOpen, github.StateClosed, github.StateAll)
	sort := newEnumValue("", github.SortCreated, github.SortUpdated, github.SortComments)
	direction := newEnumValue("", github.DirectionAsc, github.DirectionDesc)

	cmd := &cobra.Command{
		Use:   "list [REPO]",
		Short: "List issues, skipping pull requests",
		Long: `List issues, skipping pull requests.

--since accepts a relative duration such as 7d, 12h or 30m, or a UTC date
such as 2024-01-31 or 2024-01-31T09:30.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.State = state.value
			opts.Sort = sort.value
			opts.Direction = direction.value

			return a.withRepository(cmd, repoArg(args), func(ctx context.Context, repo *github.Repository) error {
				after, err := github.ParseSince(since, a.now())
				if err != nil {
					return err
				}
				opts.Since = after

				it := repo.ListIssues(opts)
				issues, err := it.All(ctx)
				if err != nil {
					return err
				}
				a.logger.Debug("listed issues",
					"repository", repo.FullName(),
					"count", len(issues),
					"pages", it.Pages(),
				)
				return a.output().list(issues)
			})
		},
	}

	flags := cmd.Flags()
	flags.VarP(state, "state", "s", "open, closed or all")
	flags.StringSliceVarP(&opts.Labels, "label", "l", nil, "only issues with this label (repeatable)")
	flags.StringVar(&opts.Creator, "creator", "", "only issues created by this user")
	flags.StringVar(&opts.Assignee, "assignee", "", "only issues assigned to this user, none or *")
	flags.StringVar(&opts.Mentioned, "mentioned", "", "only issues mentioning this user")
	flags.StringVar(&opts.Milestone, "milestone", "", "milestone number, none or *")
	flags.Var(sort, "sort", "created, updated or comments")
	flags.Var(direction, "direction", "asc or desc")
	flags.StringVar(&since, "since", "", "only issues updated since this time")
	flags.IntVarP(&opts.Limit, "limit", "n", defaultListLimit, "maximum number of issues to print")

	return cmd
}
