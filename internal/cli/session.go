package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/aretw0/flux/internal/app"
	"github.com/aretw0/flux/internal/logging"
	"github.com/aretw0/flux/internal/presentation/tui"
	"github.com/aretw0/flux/pkg/middleware"
	"github.com/aretw0/flux/pkg/observability"
	"github.com/aretw0/flux/pkg/store"
)

const helpText = `Commands:
  inc | +            increment the counter
  dec | -            decrement the counter
  fetch <id>         load a user asynchronously
  set <id> <name>    set the user directly
  wait               wait for the pending fetch
  state              show the current state
  history            list recently dispatched actions
  help               show this help
  quit | exit        leave`

// Session is the interactive demo: it reads commands, dispatches actions and
// prints state changes. It only talks to the store through Dispatch,
// GetState and Subscribe.
type Session struct {
	store  *store.Store[app.State]
	loader app.Loader
	render tui.Renderer
	logger *slog.Logger

	mu  sync.Mutex // guards out; listeners print from fetch goroutines
	out io.Writer

	pending *middleware.Future[app.UserInfo]
	history *observability.Recorder
}

// NewSession creates a demo session on s writing to out.
func NewSession(s *store.Store[app.State], out io.Writer, render tui.Renderer, logger *slog.Logger) *Session {
	if render == nil {
		render = tui.PlainRenderer
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{
		store:  s,
		render: render,
		logger: logger,
		out:    out,
	}
}

// Run reads commands from in until quit, EOF or ctx cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	unsubUser := store.SubscribeSelect(s.store, app.SelectUserInfo, func(u app.UserInfo) {
		s.system("User is now #%d %q", u.ID, u.Name)
	})
	defer unsubUser()
	unsubCount := store.SubscribeSelect(s.store, app.SelectCount, func(n int) {
		s.system("Count is now %d", n)
	})
	defer unsubCount()

	scanner := bufio.NewScanner(NewInterruptibleReader(in, ctx.Done()))
	s.prompt()
	for scanner.Scan() {
		quit, err := s.Exec(ctx, scanner.Text())
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			s.system("Error: %v", err)
		}
		if quit {
			return nil
		}
		s.prompt()
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return ctx.Err()
}

// Exec runs a single command line.
func (s *Session) Exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "inc", "+":
		_, err = s.store.Dispatch(app.Increment())
	case "dec", "-":
		_, err = s.store.Dispatch(app.Decrement())
	case "fetch":
		err = s.fetch(fields[1:])
	case "set":
		err = s.set(fields[1:])
	case "wait":
		err = s.wait(ctx)
	case "state":
		err = s.printState()
	case "history":
		s.printHistory()
	case "help", "?":
		s.println(helpText)
	case "quit", "exit", "q":
		s.system("Bye!")
		return true, nil
	default:
		err = fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
	return false, err
}

func (s *Session) fetch(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: fetch <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[0], err)
	}

	f, err := s.loader.Fetch(s.store, id)
	if err != nil {
		return err
	}
	s.pending = f
	s.logger.Info("Fetch Started", "id", id)
	s.system("Fetching user #%d...", id)
	return nil
}

// set dispatches SET_USER with a loosely typed payload, as a form would submit it.
func (s *Session) set(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: set <id> <name>")
	}
	_, err := s.store.Dispatch(app.SetUserFields(map[string]any{
		"id":   args[0],
		"name": strings.Join(args[1:], " "),
	}))
	return err
}

func (s *Session) wait(ctx context.Context) error {
	if s.pending == nil {
		s.system("Nothing to wait for.")
		return nil
	}
	u, err := s.pending.Await(ctx)
	if err != nil {
		return err
	}
	s.pending = nil
	s.system("Fetched user #%d.", u.ID)
	return nil
}

func (s *Session) printState() error {
	out, err := s.render(tui.StateMarkdown(s.store.GetState(), s.loader.Loading()))
	if err != nil {
		return fmt.Errorf("failed to render state: %w", err)
	}
	s.println(strings.TrimRight(out, "\n"))
	return nil
}

func (s *Session) printHistory() {
	if s.history == nil {
		s.system("History is not recorded.")
		return
	}
	types := s.history.Types()
	if len(types) == 0 {
		s.system("No actions yet.")
		return
	}
	for i, t := range types {
		s.println(fmt.Sprintf("%3d  %s", i+1, t))
	}
}

func (s *Session) prompt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.out, "> ")
}

func (s *Session) println(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, text)
}

func (s *Session) system(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	printSystemMessage(s.out, format, args...)
}
