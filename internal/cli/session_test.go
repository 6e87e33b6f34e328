package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/flux/internal/app"
	"github.com/aretw0/flux/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	s, err := app.NewStore(app.Env{Name: "test", FetchDelay: 5 * time.Millisecond}, app.Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	return NewSession(s, &out, tui.PlainRenderer, nil), &out
}

func TestSession_Run(t *testing.T) {
	session, out := newTestSession(t)

	in := strings.NewReader(strings.Join([]string{
		"inc",
		"+",
		"dec",
		"fetch 5",
		"wait",
		"set 9 Ada Lovelace",
		"state",
		"quit",
		"inc",
	}, "\n"))

	require.NoError(t, session.Run(context.Background(), in))

	got := out.String()
	assert.Contains(t, got, ">>> Count is now 1")
	assert.Contains(t, got, ">>> Count is now 2")
	assert.Contains(t, got, ">>> Fetching user #5...")
	assert.Contains(t, got, `>>> User is now #5 "新名字 5"`)
	assert.Contains(t, got, ">>> Fetched user #5.")
	assert.Contains(t, got, `>>> User is now #9 "Ada Lovelace"`)
	assert.Contains(t, got, "- **Id:** 9")
	assert.Contains(t, got, "- **Count:** 1")
	assert.Contains(t, got, ">>> Bye!")
	assert.Equal(t, 1, session.store.GetState().Count, "commands after quit are not run")
}

func TestSession_Exec(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
		wantOut string
	}{
		{name: "blank line", line: "   "},
		{name: "help", line: "help", wantOut: "fetch <id>"},
		{name: "wait without fetch", line: "wait", wantOut: ">>> Nothing to wait for."},
		{name: "unknown", line: "jump", wantErr: `unknown command "jump"`},
		{name: "fetch without id", line: "fetch", wantErr: "usage: fetch <id>"},
		{name: "fetch bad id", line: "fetch x", wantErr: `invalid id "x"`},
		{name: "set without name", line: "set 1", wantErr: "usage: set <id> <name>"},
		{name: "history not recorded", line: "history", wantOut: ">>> History is not recorded."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, out := newTestSession(t)

			quit, err := session.Exec(context.Background(), tt.line)
			assert.False(t, quit)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestSession_FetchWhileLoading(t *testing.T) {
	s, err := app.NewStore(app.Env{FetchDelay: 50 * time.Millisecond}, app.Options{})
	require.NoError(t, err)
	var out bytes.Buffer
	session := NewSession(s, &out, nil, nil)

	_, err = session.Exec(context.Background(), "fetch 1")
	require.NoError(t, err)

	_, err = session.Exec(context.Background(), "state")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "加载中")

	_, err = session.Exec(context.Background(), "fetch 2")
	assert.ErrorIs(t, err, app.ErrAlreadyLoading)

	_, err = session.Exec(context.Background(), "wait")
	require.NoError(t, err)
	assert.Equal(t, 1, s.GetState().UserInfo.ID)
}

func TestRunDemo_Plain(t *testing.T) {
	opts := DemoOptions{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		Env:        "ci",
		FetchDelay: time.Millisecond,
		Plain:      true,
		Metrics:    true,
	}

	var out bytes.Buffer
	err := runDemo(opts, strings.NewReader("inc\nfetch 2\nwait\ninc\nhistory\nquit\n"), &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, ">>> Environment 'ci'. Type 'help' for commands.")
	assert.Contains(t, got, ">>> Count is now 2")
	assert.Contains(t, got, "  1  INCREMENT")
	assert.Contains(t, got, "  2  FETCH_USER")
	assert.Contains(t, got, "  3  SET_USER")
	assert.Contains(t, got, "  4  INCREMENT")
	assert.Contains(t, got, ">>> Metrics:")
	assert.Contains(t, got, `flux_actions_dispatched_total{kind="command",type="INCREMENT"} 2`)
}

func TestRunDemo_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flux.yaml")
	require.NoError(t, writeFile(path, `
env: staging
fetch_delay: 1ms
initial_state:
  user_info:
    id: 3
    name: Grace
  count: 41
`))

	var out bytes.Buffer
	err := runDemo(DemoOptions{ConfigPath: path, Plain: true}, strings.NewReader("inc\nstate\n"), &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, ">>> Environment 'staging'.")
	assert.Contains(t, got, ">>> Count is now 42")
	assert.Contains(t, got, "- **Name:** Grace")
	assert.NotContains(t, got, ">>> Metrics:")
}

func TestRunDemo_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flux.yaml")
	require.NoError(t, writeFile(path, "fetch_delay: -1s\n"))

	err := runDemo(DemoOptions{ConfigPath: path, Plain: true}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "error loading config")
}
