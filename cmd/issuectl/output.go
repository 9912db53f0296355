package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jmgilman/issuectl/errors"
	"github.com/jmgilman/issuectl/github"
	"github.com/mattn/go-isatty"
)

// printer renders command results either as a human summary or as indented
// JSON.
type printer struct {
	out  io.Writer
	err  io.Writer
	json bool

	bold  *color.Color
	faint *color.Color
	green *color.Color
	red   *color.Color
	cyan  *color.Color
}

func newPrinter(out, errOut io.Writer, jsonOutput, noColor bool) *printer {
	p := &printer{
		out:   out,
		err:   errOut,
		json:  jsonOutput,
		bold:  color.New(color.Bold),
		faint: color.New(color.Faint),
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed, color.Bold),
		cyan:  color.New(color.FgCyan),
	}

	enabled := !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(out)
	for _, c := range []*color.Color{p.bold, p.faint, p.green, p.red, p.cyan} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// issue prints the outcome of a mutation, e.g. "Created issue #12: url".
func (p *printer) issue(verb string, issue *github.Issue) error {
	if p.json {
		return p.writeJSON(issue.Data())
	}
	_, err := fmt.Fprintf(p.out, "%s issue %s: %s\n",
		verb, p.bold.Sprintf("#%d", issue.Number()), issue.HTMLURL())
	return writeFailed(err)
}

// detail prints a single issue in full.
func (p *printer) detail(issue *github.Issue) error {
	if p.json {
		return p.writeJSON(issue.Data())
	}

	data := issue.Data()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", p.bold.Sprintf("#%d", data.Number), p.bold.Sprint(data.Title))

	state := data.State
	if data.StateReason != "" {
		state += " (" + data.StateReason + ")"
	}
	fmt.Fprintf(&b, "%s\n", p.stateColor(data.State).Sprint(state))

	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s %s\n", p.faint.Sprintf("%-10s", name+":"), value)
		}
	}
	field("author", data.Author)
	field("labels", strings.Join(data.Labels, ", "))
	field("assignees", strings.Join(data.Assignees, ", "))
	if data.Milestone != nil {
		field("milestone", fmt.Sprintf("%s (#%d)", data.Milestone.Title, data.Milestone.Number))
	}
	field("comments", fmt.Sprint(data.Comments))
	if data.Locked {
		locked := "yes"
		if data.LockReason != "" {
			locked += " (" + data.LockReason + ")"
		}
		field("locked", locked)
	}
	if data.PullRequest {
		field("type", "pull request")
	}
	field("created", github.FormatTimestamp(data.CreatedAt))
	field("updated", github.FormatTimestamp(data.UpdatedAt))
	field("url", data.HTMLURL)

	if body := strings.TrimSpace(data.Body); body != "" {
		fmt.Fprintf(&b, "\n%s\n", body)
	}

	_, err := io.WriteString(p.out, b.String())
	return writeFailed(err)
}

// list prints one row per issue.
func (p *printer) list(issues []*github.Issue) error {
	if p.json {
		rows := make([]*github.IssueData, 0, len(issues))
		for _, issue := range issues {
			rows = append(rows, issue.Data())
		}
		return p.writeJSON(rows)
	}

	if len(issues) == 0 {
		_, err := fmt.Fprintln(p.out, "No issues found.")
		return writeFailed(err)
	}
	for _, issue := range issues {
		_, err := fmt.Fprintf(p.out, "%s [%s] %s  -> %s\n",
			p.bold.Sprintf("#%d", issue.Number()),
			p.stateColor(issue.State()).Sprint(issue.State()),
			issue.Title(),
			p.cyan.Sprint(issue.HTMLURL()),
		)
		if err != nil {
			return writeFailed(err)
		}
	}
	return nil
}

func (p *printer) comment(number int, comment *github.CommentData) error {
	if p.json {
		return p.writeJSON(comment)
	}
	_, err := fmt.Fprintf(p.out, "Commented on issue %s: %s\n", p.bold.Sprintf("#%d", number), comment.HTMLURL)
	return writeFailed(err)
}

// lockState is the JSON form of a lock or unlock result.
type lockState struct {
	Number int    `json:"number"`
	Locked bool   `json:"locked"`
	Reason string `json:"reason,omitempty"`
}

func (p *printer) lock(state lockState) error {
	if p.json {
		return p.writeJSON(state)
	}

	verb := "Unlocked"
	if state.Locked {
		verb = "Locked"
	}
	line := fmt.Sprintf("%s issue %s", verb, p.bold.Sprintf("#%d", state.Number))
	if state.Reason != "" {
		line += " as " + state.Reason
	}
	_, err := fmt.Fprintln(p.out, line)
	return writeFailed(err)
}

// error reports a failed command on stderr.
func (p *printer) error(err error) {
	if p.json {
		data, marshalErr := json.MarshalIndent(errors.ToJSON(err), "", "  ")
		if marshalErr == nil {
			fmt.Fprintln(p.err, string(data))
			return
		}
	}

	fmt.Fprintf(p.err, "%s %s\n", p.red.Sprint("Error:"), err)

	var platformErr errors.PlatformError
	if errors.As(err, &platformErr) {
		if hint, ok := platformErr.Context()["hint"].(string); ok && hint != "" {
			fmt.Fprintf(p.err, "%s %s\n", p.faint.Sprint("Hint:"), hint)
		}
	}
}

// usage reports a command line mistake on stderr.
func (p *printer) usage(err error) {
	fmt.Fprintf(p.err, "%s %s\n", p.red.Sprint("Error:"), err)
	fmt.Fprintln(p.err, "Run 'issuectl --help' for usage.")
}

func (p *printer) stateColor(state string) *color.Color {
	if state == github.StateOpen {
		return p.green
	}
	return p.red
}

func (p *printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to encode output")
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return writeFailed(err)
}

// writeFailed reports a failed write to the output stream as an internal
// error, so it is not mistaken for a command line mistake.
func writeFailed(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.CodeInternal, "failed to write output")
}
