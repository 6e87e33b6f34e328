package store

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/flux/internal/logging"
	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/reducer"
	"github.com/petermattis/goid"
)

// Store holds a single state tree and coordinates the dispatch pipeline.
// Safe for concurrent use.
type Store[S any] struct {
	reducer  reducer.Reducer[S]
	dispatch Next

	current atomic.Pointer[S]

	mu       sync.Mutex // serializes reducer calls
	reducing atomic.Bool
	owner    atomic.Int64 // goroutine running the reducer

	subMu     sync.Mutex
	listeners []*listener
	nextID    uint64

	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

type listener struct {
	id uint64
	fn func()
}

// New builds a store around r, applying enhancers (e.g. middleware) from opts.
// The reducer is run once with domain.ActionInit to produce the initial
// state; a panic there fails construction with domain.ErrBootstrap.
func New[S any](r reducer.Reducer[S], opts ...Option[S]) (*Store[S], error) {
	if r == nil {
		return nil, domain.ErrNilReducer
	}

	o := options[S]{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}

	create := Creator[S](func(r reducer.Reducer[S], preloaded *S) (*Store[S], error) {
		return newStore(r, preloaded, o.logger, o.hooks)
	})
	for i := len(o.enhancers) - 1; i >= 0; i-- {
		create = o.enhancers[i](create)
	}

	return create(r, o.preloaded)
}

func newStore[S any](r reducer.Reducer[S], preloaded *S, logger *slog.Logger, hooks domain.LifecycleHooks) (*Store[S], error) {
	s := &Store[S]{
		reducer: r,
		logger:  logger,
		hooks:   hooks,
	}
	s.dispatch = s.reduce

	var seed S
	if preloaded != nil {
		seed = *preloaded
	}

	initial, err := s.invoke(seed, domain.Command{
		Type:    domain.ActionInit,
		Payload: domain.InitInfo{Preloaded: preloaded != nil},
	})
	if err != nil {
		s.logger.Error("Store Bootstrap Failed", "err", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrBootstrap, err)
	}
	s.current.Store(&initial)

	s.logger.Debug("Store Initialized", "preloaded", preloaded != nil)
	return s, nil
}

// Dispatch sends action through the middleware chain.
// For commands that reach the reducer the result is the new state (S).
// Effects handled by the thunk middleware return the thunk's own result.
func (s *Store[S]) Dispatch(action domain.Action) (any, error) {
	if domain.IsNil(action) {
		return nil, domain.ErrNilAction
	}

	if s.hooks.OnDispatch != nil {
		s.hooks.OnDispatch(&domain.DispatchEvent{
			Timestamp: time.Now(),
			Kind:      action.Kind(),
			Type:      domain.TypeOf(action),
		})
	}

	return s.dispatch(action)
}

// GetState returns the current state snapshot.
func (s *Store[S]) GetState() S {
	return *s.current.Load()
}

// Subscribe registers a listener called after every command reaches the
// reducer. The returned function removes it; calling it twice is a no-op.
func (s *Store[S]) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	l := &listener{id: s.nextID, fn: fn}

	// Copy on write: notify rounds iterate over a stable snapshot.
	next := make([]*listener, len(s.listeners), len(s.listeners)+1)
	copy(next, s.listeners)
	s.listeners = append(next, l)

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(l.id) })
	}
}

func (s *Store[S]) unsubscribe(id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	next := make([]*listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		if l.id != id {
			next = append(next, l)
		}
	}
	s.listeners = next
}

// reduce is the terminal step of the chain.
func (s *Store[S]) reduce(action domain.Action) (any, error) {
	if action.Kind() == domain.KindEffect {
		return nil, fmt.Errorf("%w (%s)", domain.ErrUnhandledEffect, domain.TypeOf(action))
	}

	// A call on the goroutine that is already inside the reducer can only
	// come from the reducer itself; waiting for the lock would deadlock.
	if s.reducing.Load() && s.owner.Load() == goid.Get() {
		s.logger.Warn("Reentrant Dispatch Rejected", "type", domain.TypeOf(action))
		return nil, domain.ErrReentrantDispatch
	}

	start := time.Now()

	s.mu.Lock()
	prev := *s.current.Load()
	s.owner.Store(goid.Get())
	s.reducing.Store(true)
	next, err := s.invoke(prev, action)
	s.reducing.Store(false)
	s.owner.Store(0)
	if err == nil {
		s.current.Store(&next)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Reducer Failed", "type", domain.TypeOf(action), "err", err)
		return nil, err
	}

	if s.hooks.OnReduce != nil {
		s.hooks.OnReduce(&domain.ReduceEvent{
			DispatchEvent: domain.DispatchEvent{
				Timestamp: start,
				Kind:      action.Kind(),
				Type:      domain.TypeOf(action),
			},
			Duration: time.Since(start),
		})
	}

	s.notify(action)
	return next, nil
}

// invoke calls the reducer, turning a panic into an error.
func (s *Store[S]) invoke(state S, action domain.Action) (next S, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrReducerPanic, r)
		}
	}()
	return s.reducer(state, action), nil
}

func (s *Store[S]) notify(action domain.Action) {
	s.subMu.Lock()
	listeners := s.listeners
	s.subMu.Unlock()

	for _, l := range listeners {
		l.fn()
	}

	if s.hooks.OnNotify != nil {
		s.hooks.OnNotify(&domain.NotifyEvent{
			Timestamp: time.Now(),
			Type:      domain.TypeOf(action),
			Listeners: len(listeners),
		})
	}
}
