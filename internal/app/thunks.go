package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/middleware"
	"github.com/aretw0/flux/pkg/store"
)

// DefaultFetchDelay is the simulated latency of FetchUserByID.
const DefaultFetchDelay = time.Second

// ErrAlreadyLoading is returned by Loader.Fetch while a fetch is in flight.
var ErrAlreadyLoading = errors.New("a fetch is already in progress")

// Env is the extra argument bound to the thunk middleware.
type Env struct {
	Name       string
	FetchDelay time.Duration
}

func envFrom(extra any) Env {
	switch e := extra.(type) {
	case Env:
		return e
	case *Env:
		if e != nil {
			return *e
		}
	}
	return Env{}
}

// UserName is the name given to a fetched user.
func UserName(id int) string {
	return fmt.Sprintf("新名字 %d", id)
}

// FetchUserByID simulates loading a user. The thunk returns a
// *middleware.Future[UserInfo] that settles after the env delay, once
// SET_USER has been dispatched.
func FetchUserByID(id int) domain.Effect[State] {
	return domain.Effect[State]{
		Name: "FETCH_USER",
		Run: func(dispatch domain.Dispatch, _ domain.GetState[State], extra any) (any, error) {
			delay := envFrom(extra).FetchDelay
			if delay <= 0 {
				delay = DefaultFetchDelay
			}

			return middleware.Go(func() (UserInfo, error) {
				time.Sleep(delay)

				u := UserInfo{ID: id, Name: UserName(id)}
				if _, err := dispatch(SetUser(u)); err != nil {
					return UserInfo{}, fmt.Errorf("failed to set user %d: %w", id, err)
				}
				return u, nil
			}), nil
		},
	}
}

// Loader tracks the fetch in flight. The loading flag is presentation
// state and lives outside the store.
type Loader struct {
	mu      sync.Mutex
	pending *middleware.Future[UserInfo]
}

// Loading reports whether a fetch is in flight.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy()
}

func (l *Loader) busy() bool {
	if l.pending == nil {
		return false
	}
	_, settled, _ := l.pending.Poll()
	return !settled
}

// Fetch dispatches FetchUserByID unless one is already running.
func (l *Loader) Fetch(s *store.Store[State], id int) (*middleware.Future[UserInfo], error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy() {
		return nil, ErrAlreadyLoading
	}

	res, err := s.Dispatch(FetchUserByID(id))
	if err != nil {
		return nil, err
	}

	f, ok := res.(*middleware.Future[UserInfo])
	if !ok {
		return nil, fmt.Errorf("unexpected fetch result %T", res)
	}
	l.pending = f
	return f, nil
}
