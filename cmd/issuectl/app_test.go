package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jmgilman/issuectl/config"
	"github.com/jmgilman/issuectl/errors"
	"github.com/jmgilman/issuectl/git"
	"github.com/jmgilman/issuectl/github"
	"github.com/jmgilman/issuectl/github/mocks"
	"github.com/jmgilman/issuectl/github/providers/sdk"
	"github.com/jmgilman/issuectl/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

type testApp struct {
	*app
	provider *mocks.ProviderMock
	notifier *mocks.NotifierMock
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

// newTestApp returns an app wired to provider with a recording notifier and
// a clean environment holding only a token.
func newTestApp(t *testing.T, provider *mocks.ProviderMock) *testApp {
	t.Helper()

	t.Chdir(t.TempDir())
	for _, env := range []string{"GITHUB_OWNER", "GITHUB_API_URL", "SLACK_WEBHOOK_URL", "ISSUECTL_BACKEND", "ISSUECTL_TIMEOUT"} {
		t.Setenv(env, "")
	}
	t.Setenv("GITHUB_TOKEN", "test-token")

	ta := &testApp{
		provider: provider,
		notifier: &mocks.NotifierMock{
			NotifyFunc: func(ctx context.Context, text string) error { return nil },
		},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	ta.app = newApp(strings.NewReader(""), ta.stdout, ta.stderr)
	ta.newProvider = func(*config.Config) (github.Provider, error) { return provider, nil }
	ta.newNotifier = func(*config.Config) (github.Notifier, error) { return ta.notifier, nil }
	ta.discoverRepo = func() (string, error) { return "octo/hello", nil }
	ta.now = func() time.Time { return testNow }
	return ta
}

func (ta *testApp) exec(args ...string) int {
	return ta.run(context.Background(), args)
}

func issueData(number int, title string) *github.IssueData {
	return &github.IssueData{
		Number:  number,
		Title:   title,
		State:   github.StateOpen,
		HTMLURL: "https://github.com/octo/hello/issues/" + strconv.Itoa(number),
	}
}

func TestCreate(t *testing.T) {
	provider := &mocks.ProviderMock{
		CreateIssueFunc: func(ctx context.Context, owner, repo string, opts github.CreateIssueOptions) (*github.IssueData, error) {
			return issueData(12, opts.Title), nil
		},
	}
	ta := newTestApp(t, provider)

	code := ta.exec("create", "octo/hello", "-t", "Crash on start", "-b", "Steps", "-l", "bug", "-l", "ui", "-a", "alice", "--milestone", "3")

	require.Equal(t, exitOK, code, ta.stderr.String())
	assert.Equal(t, "Created issue #12: https://github.com/octo/hello/issues/12\n", ta.stdout.String())

	require.Len(t, provider.CreateIssueCalls(), 1)
	call := provider.CreateIssueCalls()[0]
	assert.Equal(t, "octo", call.Owner)
	assert.Equal(t, "hello", call.Repo)
	assert.Equal(t, "Crash on start", call.Opts.Title)
	assert.Equal(t, "Steps", call.Opts.Body)
	assert.Equal(t, []string{"bug", "ui"}, call.Opts.Labels)
	assert.Equal(t, []string{"alice"}, call.Opts.Assignees)
	require.NotNil(t, call.Opts.Milestone)
	assert.Equal(t, 3, *call.Opts.Milestone)

	require.Len(t, ta.notifier.NotifyCalls(), 1)
	assert.Equal(t, "[octo/hello] Created issue #12: Crash on start\nhttps://github.com/octo/hello/issues/12",
		ta.notifier.NotifyCalls()[0].Text)
}

func TestCreate_InfersRepository(t *testing.T) {
	provider := &mocks.ProviderMock{
		CreateIssueFunc: func(ctx context.Context, owner, repo string, opts github.CreateIssueOptions) (*github.IssueData, error) {
			return issueData(1, opts.Title), nil
		},
	}
	ta := newTestApp(t, provider)

	code := ta.exec("create", "--title", "Inferred")

	require.Equal(t, exitOK, code, ta.stderr.String())
	require.Len(t, provider.CreateIssueCalls(), 1)
	assert.Equal(t, "octo", provider.CreateIssueCalls()[0].Owner)
	assert.Equal(t, "hello", provider.CreateIssueCalls()[0].Repo)
	assert.Nil(t, provider.CreateIssueCalls()[0].Opts.Milestone)
}

func TestCreate_MissingTitle(t *testing.T) {
	provider := &mocks.ProviderMock{}
	ta := newTestApp(t, provider)

	code := ta.exec("create", "octo/hello", "-b", "no title")

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, ta.stderr.String(), "title")
	assert.Empty(t, provider.CreateIssueCalls())
}

func TestCreate_BlankTitleRejectedBeforeCall(t *testing.T) {
	provider := &mocks.ProviderMock{}
	ta := newTestApp(t, provider)

	code := ta.exec("create", "octo/hello", "-t", "   ")

	assert.Equal(t, exitError, code)
	assert.Contains(t, ta.stderr.String(), "INVALID_INPUT")
	assert.Empty(t, provider.CreateIssueCalls())
	assert.Empty(t, ta.notifier.NotifyCalls())
}

func TestGet(t *testing.T) {
	provider := &mocks.ProviderMock{
		GetIssueFunc: func(ctx context.Context, owner, repo string, number int) (*github.IssueData, error) {
			data := issueData(number, "Crash on start")
			data.Author = "alice"
			data.Labels = []string{"bug", "ui"}
			data.Milestone = &github.MilestoneData{Number: 3, Title: "v1.0"}
			data.Body = "Steps to reproduce"
			return data, nil
		},
	}
	ta := newTestApp(t, provider)

	code := ta.exec("get", "hello", "12", "--owner", "octo")

	require.Equal(t, exitOK, code, ta.stderr.String())
	out := ta.stdout.String()
	assert.Contains(t, out, "#12 Crash on start\n")
	assert.Contains(t, out, "bug, ui")
	assert.Contains(t, out, "v1.0 (#3)")
	assert.Contains(t, out, "Steps to reproduce")
	assert.Empty(t, ta.notifier.NotifyCalls())
}

func TestGet_JSON(t *testing.T) {
	provider := &mocks.ProviderMock{
		GetIssueFunc: func(ctx context.Context, owner, repo string, number int) (*github.IssueData, error) {
			return issueData(number, "Crash on start"), nil
		},
	}
	ta := newTestApp(t, provider)

	code := ta.exec("get", "12", "--json")

	require.Equal(t, exitOK, code, ta.stderr.String())
	var got github.IssueData
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &got))
	assert.Equal(t, 12, got.Number)
	assert.Equal(t, "Crash on start", got.Title)
}

func TestIssueNumberArgument(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "not a number", args: []string{"get", "octo/hello", "abc"}},
		{name: "zero", args: []string{"close", "0"}},
		{name: "missing", args: []string{"get"}},
		{name: "too many", args: []string{"get", "octo/hello", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mocks.ProviderMock{}
			ta := newTestApp(t, provider)

			assert.Equal(t, exitUsage, ta.exec(tt.args...))
			assert.Empty(t, provider.GetIssueCalls())
			assert.Empty(t, provider.UpdateIssueCalls())
		})
	}
}

func TestUpdate_AddRemoveReadsFirst(t *testing.T) {
	provider := &mocks.ProviderMock{
		GetIssueFunc: func(ctx context.Context, owner, repo string, number int) (*github.IssueData, error) {
			data := issueData(number, "Crash")
			data.Labels = []string{"bug", "needs-triage"}
			return data, nil
		},
		UpdateIssueFunc: func(ctx context.Context, owner, repo string, number int, opts github.UpdateIssueOptions) (*github.IssueData, error) {
			return issueData(number, "Crash"), nil
		},
	}
	ta := newTestApp(t, provider)

	code := ta.exec("update", "octo/hello", "12", "--add-label", "triaged", "--remove-label", "needs-triage")

	require.Equal(t, exitOK, code, ta.stderr.String())
	assert.Len(t, provider.GetIssueCalls(), 1)
	require.Len(t, provider.UpdateIssueCalls(), 1)
	assert.Equal(t, map[string]any{"labels": []string{"bug", "triaged"}},
		provider.UpdateIssueCalls()[0].Opts.Payload())
	assert.Equal(t, "Updated issue #12: https://github.com/octo/hello/issues/12\n", ta.stdout.String())
}

func TestUpdate_ReplaceSkipsRead(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]any
	}{
		{
			name: "set labels",
			args: []string{"--set-label", "bug,ui"},
			want: map[string]any{"labels": []string{"bug", "ui"}},
		},
		{
			name: "clear assignees",
			args: []string{"--clear-assignees"},
			want: map[string]any{"assignees": []string{}},
		},
		{
			name: "clear milestone with title",
			args: []string{"--milestone", "none", "--title", "Renamed"},
			want: map[string]any{"milestone": nil, "title": "Renamed"},
		},
		{
			name: "milestone number",
			args: []string{"--milestone", "4"},
			want: map[string]any{"milestone": 4},
		},
		{
			name: "empty body clears it",
			args: []string{"--body", ""},
			want: map[string]any{"body": ""},
		},
		{
			name: "reason implies state",
			args: []string{"--reason", "not_planned"},
			want: map[string]any{"state": "closed", "state_reason": "not_planned"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mocks.ProviderMock{
				UpdateIssueFunc: func(ctx context.Context, owner, repo string, number int, opts github.UpdateIssueOptions) (*github.IssueData, error) {
					return issueData(number, "Crash"), nil
				},
			}
			ta := newTestApp(t, provider)

			code := ta.exec(append([]string{"update", "12"}, tt.args...)...)

			require.Equal(t, exitOK, code, ta.stderr.String())
			assert.Empty(t, provider.GetIssueCalls())
			require.Len(t, provider.UpdateIssueCalls(), 1)
			assert.Equal(t, tt.want, provider.UpdateIssueCalls()[0].Opts.Payload())
		})
	}
}

func TestUpdate_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "set and add labels", args: []string{"--set-label", "a", "--add-label", "b"}},
		{name: "clear and remove assignees", args: []string{"--clear-assignees", "--remove-assignee", "bob"}},
		{name: "set and clear labels", args: []string{"--set-label", "a", "--clear-labels"}},
		{name: "bad milestone", args: []string{"--milestone", "next"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mocks.ProviderMock{}
			ta := newTestApp(t, provider)

			code := ta.exec(append([]string{"update", "octo/hello", "12"}, tt.args...)...)

			assert.Equal(t, exitUsage, code)
			assert.Empty(t, provider.UpdateIssueCalls())
		})
	}
}

func TestUpdate_RejectedBeforeCall(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode errors.ErrorCode
	}{
		{name: "nothing to update", args: nil, wantCode: errors.CodeInvalidInput},
		{name: "unknown state", args: []string{"--state", "merged"}, wantCode: errors.CodeInvalidState},
		{name: "reason does not fit state", args: []string{"--state", "open", "--reason", "completed"}, wantCode: errors.CodeInvalidReason},
		{name: "non-positive milestone", args: []string{"--milestone", "0"}, wantCode: errors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mocks.ProviderMock{}
			ta := newTestApp(t, provider)

			code := ta.exec(append([]string{"update", "octo/hello", "12", "--json"}, tt.args...)...)

			assert.Equal(t, exitError, code)
			var resp errors.ErrorResponse
			require.NoError(t, json.Unmarshal(ta.stderr.Bytes(), &resp), ta.stderr.String())
			assert.Equal(t, string(tt.wantCode), resp.Code)
			assert.Empty(t, provider.GetIssueCalls())
			assert.Empty(t, provider.UpdateIssueCalls())
		})
	}
}

func TestStateCommands(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOutput string
		want       map[string]any
	}{
		{
			name:       "close",
			args:       []string{"close", "octo/hello", "7"},
			wantOutput: "Closed issue #7",
			want:       map[string]any{"state": "closed"},
		},
		{
			name:       "close not planned",
			args:       []string{"close", "7", "--reason", "not_planned"},
			wantOutput: "Closed issue #7",
			want:       map[string]any{"state": "closed", "state_reason": "not_planned"},
		},
		{
			name:       "complete",
			args:       []string{"complete", "7"},
			wantOutput: "Completed issue #7",
			want:       map[string]any{"state": "closed", "state_reason": "completed"},
		},
		{
			name:       "reopen",
			args:       []string{"reopen", "7", "--reason", "reopened"},
			wantOutput: "Reopened issue #7",
			want:       map[string]any{"state": "open", "state_reason": "reopened"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mocks.ProviderMock{
				UpdateIssueFunc: func(ctx context.Context, owner, repo string, number int, opts github.UpdateIssueOptions) (*github.IssueData, error) {
					return issueData(number, "Crash"), nil
				},
			}
			ta := newTestApp(t, provider)

			code := ta.exec(tt.args...)

			require.Equal(t, exitOK, code, ta.stderr.String())
			assert.Contains(t, ta.stdout.String(), tt.wantOutput)
			require.Len(t, provider.UpdateIssueCalls(), 1)
			assert.Equal(t, tt.want, provider.UpdateIssueCalls()[0].Opts.Payload())
		})
	}
}

func TestClose_InvalidReason(t *testing.T) {
	provider := &mocks.ProviderMock{}
	ta := newTestApp(t, provider)

	code := ta.exec("close", "7", "--reason", "duplicate")

	assert.Equal(t, exitError, code)
	assert.Contains(t, ta.stderr.String(), "INVALID_REASON")
	assert.Empty(t, provider.UpdateIssueCalls())
}

func TestComment(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{name: "flag", args: []string{"--body", "Looks good"}, want: "Looks good"},
		{name: "stdin", args: []string{"--body-file", "-"}, stdin: "From stdin\n", want: "From stdin\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mocks.ProviderMock{
				CreateCommentFunc: func(ctx context.Context, owner, repo string, number int, body string) (*github.CommentData, error) {
					return &github.CommentData{ID: 99, Body: body, HTMLURL: "https://github.com/octo/hello/issues/3#issuecomment-99"}, nil
				},
			}
			ta := newTestApp(t, provider)
			ta.stdin = strings.NewReader(tt.stdin)

			code := ta.exec(append([]string{"comment", "octo/hello", "3"}, tt.args...)...)

			require.Equal(t, exitOK, code, ta.stderr.String())
			require.Len(t, provider.CreateCommentCalls(), 1)
			assert.Equal(t, tt.want, provider.CreateCommentCalls()[0].Body)
			assert.Equal(t, "Commented on issue #3: https://github.com/octo/hello/issues/3#issuecomment-99\n", ta.stdout.String())
		})
	}
}

func TestComment_BodyFile(t *testing.T) {
	provider := &mocks.ProviderMock{
		CreateCommentFunc: func(ctx context.Context, owner, repo string, number int, body string) (*github.CommentData, error) {
			return &github.CommentData{ID: 1, Body: body}, nil
		},
	}
	ta := newTestApp(t, provider)
	path := filepath.Join(t.TempDir(), "comment.md")
	require.NoError(t, os.WriteFile(path, []byte("# Notes"), 0o600))

	require.Equal(t, exitOK, ta.exec("comment", "3", "--body-file", path), ta.stderr.String())
	assert.Equal(t, "# Notes", provider.CreateCommentCalls()[0].Body)

	ta.stderr.Reset()
	assert.Equal(t, exitError, ta.exec("comment", "3", "--body-file", filepath.Join(t.TempDir(), "missing.md")))
	assert.Len(t, provider.CreateCommentCalls(), 1)
}

func TestComment_BodyRequired(t *testing.T) {
	provider := &mocks.ProviderMock{}
	ta := newTestApp(t, provider)

	assert.Equal(t, exitUsage, ta.exec("comment", "3"))
	assert.Equal(t, exitUsage, ta.exec("comment", "3", "--body", "x", "--body-file", "-"))
	assert.Empty(t, provider.CreateCommentCalls())
}

func TestLockUnlock(t *testing.T) {
	provider := &mocks.ProviderMock{
		LockIssueFunc: func(ctx context.Context, owner, repo string, number int, reason string) error {
			return nil
		},
		UnlockIssueFunc: func(ctx context.Context, owner, repo string, number int) error {
			return nil
		},
	}
	ta := newTestApp(t, provider)

	require.Equal(t, exitOK, ta.exec("lock", "5", "--reason", "too heated"), ta.stderr.String())
	assert.Equal(t, "Locked issue #5 as too heated\n", ta.stdout.String())
	require.Len(t, provider.LockIssueCalls(), 1)
	assert.Equal(t, "too heated", provider.LockIssueCalls()[0].Reason)

	ta.stdout.Reset()
	require.Equal(t, exitOK, ta.exec("unlock", "5", "--json"), ta.stderr.String())
	assert.JSONEq(t, `{"number":5,"locked":false}`, ta.stdout.String())
	assert.Len(t, provider.UnlockIssueCalls(), 1)

	assert.Len(t, ta.notifier.NotifyCalls(), 2)
}

func TestLock_InvalidReason(t *testing.T) {
	provider := &mocks.ProviderMock{}
	ta := newTestApp(t, provider)

	assert.Equal(t, exitError, ta.exec("lock", "5", "--reason", "boring"))
	assert.Empty(t, provider.LockIssueCalls())
}

func TestRemoteErrors(t *testing.T) {
	provider := &mocks.ProviderMock{
		GetIssueFunc: func(ctx context.Context, owner, repo string, number int) (*github.IssueData, error) {
			return nil, errors.New(errors.CodeNotFound, "Not Found")
		},
	}
	ta := newTestApp(t, provider)

	code := ta.exec("get", "octo/hello", "404", "--json")

	assert.Equal(t, exitError, code)
	assert.Empty(t, ta.stdout.String())
	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(ta.stderr.Bytes(), &resp), ta.stderr.String())
	assert.Equal(t, string(errors.CodeNotFound), resp.Code)
	assert.Equal(t, "octo/hello", resp.Context["repository"])
}

func TestNotificationFailureIsAbsorbed(t *testing.T) {
	provider := &mocks.ProviderMock{
		UpdateIssueFunc: func(ctx context.Context, owner, repo string, number int, opts github.UpdateIssueOptions) (*github.IssueData, error) {
			return issueData(number, "Crash"), nil
		},
	}
	ta := newTestApp(t, provider)
	ta.notifier.NotifyFunc = func(ctx context.Context, text string) error {
		return errors.New(errors.CodeNotificationFailed, "webhook returned 500")
	}

	code := ta.exec("close", "7")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, ta.stdout.String(), "Closed issue #7")
	assert.Len(t, ta.notifier.NotifyCalls(), 1)
	assert.Empty(t, ta.stderr.String())
}

func TestConfigurationErrors(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		provider := &mocks.ProviderMock{}
		ta := newTestApp(t, provider)
		t.Setenv("GITHUB_TOKEN", "")

		code := ta.exec("close", "octo/hello", "7")

		assert.Equal(t, exitError, code)
		assert.Contains(t, ta.stderr.String(), "MISSING_CREDENTIAL")
		assert.Contains(t, ta.stderr.String(), "Hint: Set GITHUB_TOKEN")
		assert.Empty(t, provider.UpdateIssueCalls())
	})

	t.Run("unknown backend", func(t *testing.T) {
		ta := newTestApp(t, &mocks.ProviderMock{})

		assert.Equal(t, exitError, ta.exec("get", "7", "--backend", "graphql"))
		assert.Contains(t, ta.stderr.String(), "INVALID_CONFIGURATION")
	})

	t.Run("repository not inferable", func(t *testing.T) {
		ta := newTestApp(t, &mocks.ProviderMock{})
		ta.discoverRepo = func() (string, error) {
			return "", errors.New(errors.CodeNotFound, "not a git repository")
		}

		assert.Equal(t, exitError, ta.exec("get", "7", "--json"))
		var resp errors.ErrorResponse
		require.NoError(t, json.Unmarshal(ta.stderr.Bytes(), &resp))
		assert.Equal(t, string(errors.CodeAmbiguousResource), resp.Code)
	})

	t.Run("bare name without owner", func(t *testing.T) {
		ta := newTestApp(t, &mocks.ProviderMock{})

		assert.Equal(t, exitError, ta.exec("get", "hello", "7"))
		assert.Contains(t, ta.stderr.String(), "AMBIGUOUS_RESOURCE")
	})
}

func TestHelpDoesNotNeedConfiguration(t *testing.T) {
	ta := newTestApp(t, &mocks.ProviderMock{})
	t.Setenv("GITHUB_TOKEN", "")

	assert.Equal(t, exitOK, ta.exec("--help"))
	assert.Contains(t, ta.stdout.String(), "list")
}

func TestRepositoryFromDir(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.Init(dir)
	require.NoError(t, err)
	require.NoError(t, repo.AddRemote(git.RemoteOptions{Name: git.DefaultRemote, URL: "git@github.com:octo/hello.git"}))

	nested := filepath.Join(dir, "cmd", "tool")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := repositoryFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, "octo/hello", got)

	_, err = repositoryFromDir(t.TempDir())
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestFactories(t *testing.T) {
	load := func(t *testing.T, env map[string]string) *config.Config {
		t.Helper()
		for _, name := range []string{"GITHUB_TOKEN", "GITHUB_OWNER", "GITHUB_API_URL", "SLACK_WEBHOOK_URL", "ISSUECTL_BACKEND", "ISSUECTL_TIMEOUT"} {
			t.Setenv(name, env[name])
		}
		cfg, err := config.NewLoader(config.WithDir(t.TempDir())).Load()
		require.NoError(t, err)
		return cfg
	}

	t.Run("sdk provider", func(t *testing.T) {
		cfg := load(t, map[string]string{"GITHUB_TOKEN": "test-token"})

		provider, err := newProvider(cfg)
		require.NoError(t, err)
		assert.IsType(t, &sdk.SDKProvider{}, provider)
	})

	t.Run("sdk provider without token", func(t *testing.T) {
		cfg := load(t, nil)

		_, err := newProvider(cfg)
		assert.Equal(t, errors.CodeMissingCredential, errors.GetCode(err))
	})

	t.Run("discard notifier", func(t *testing.T) {
		cfg := load(t, nil)

		notifier, err := newNotifier(cfg)
		require.NoError(t, err)
		assert.Equal(t, notify.Discard{}, notifier)
	})

	t.Run("slack notifier", func(t *testing.T) {
		cfg := load(t, map[string]string{"SLACK_WEBHOOK_URL": "https://hooks.slack.com/services/T0/B0/X"})

		notifier, err := newNotifier(cfg)
		require.NoError(t, err)
		assert.IsType(t, &notify.Slack{}, notifier)
	})

	t.Run("bad webhook", func(t *testing.T) {
		cfg := load(t, map[string]string{"SLACK_WEBHOOK_URL": "hooks.slack.com"})

		_, err := newNotifier(cfg)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestRemoteRejectionDetailInJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/repos/octo/hello/issues/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Validation Failed","errors":[{"resource":"Issue","field":"assignees","code":"invalid","message":"ghost is not assignable"}]}`))
	}))
	defer server.Close()

	ta := newTestApp(t, &mocks.ProviderMock{})
	ta.newProvider = newProvider
	t.Setenv("GITHUB_API_URL", server.URL)

	code := ta.exec("--json", "update", "octo/hello", "1", "--set-assignee", "ghost")

	assert.Equal(t, exitError, code)
	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(ta.stderr.Bytes(), &resp), ta.stderr.String())
	assert.Equal(t, string(errors.CodeRejected), resp.Code)
	assert.Contains(t, resp.Message, "Validation Failed")
	assert.Contains(t, resp.Message, "ghost is not assignable")
	assert.Contains(t, resp.Cause, "422")
	assert.Empty(t, ta.notifier.NotifyCalls())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestOutputWriteFailureIsNotUsageError(t *testing.T) {
	provider := &mocks.ProviderMock{
		UpdateIssueFunc: func(ctx context.Context, owner, repo string, number int, opts github.UpdateIssueOptions) (*github.IssueData, error) {
			return issueData(number, "Crash"), nil
		},
		ListIssuesFunc: func(ctx context.Context, owner, repo string, opts github.ListIssuesOptions, page int) (*github.IssuePage, error) {
			return &github.IssuePage{}, nil
		},
	}

	for _, args := range [][]string{
		{"close", "7"},
		{"list"},
		{"list", "--json"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			ta := newTestApp(t, provider)
			ta.app.stdout = failingWriter{}

			code := ta.exec(args...)

			assert.Equal(t, exitError, code)
			assert.Contains(t, ta.stderr.String(), "INTERNAL")
			assert.Contains(t, ta.stderr.String(), "failed to write output")
		})
	}
}
