package store

import (
	"fmt"

	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/reducer"
)

// Next is the following link in a middleware chain.
// The last link is the store's reducer step.
type Next func(domain.Action) (any, error)

// API is the capability set handed to every middleware.
// Dispatch re-enters the full chain from the outermost middleware.
type API[S any] struct {
	Dispatch domain.Dispatch
	GetState domain.GetState[S]
}

// Middleware intercepts actions on their way to the reducer. It may forward
// the action (possibly transformed) to next, short-circuit it, or run
// arbitrary logic and dispatch derived actions through api.
type Middleware[S any] interface {
	Intercept(api API[S], action domain.Action, next Next) (any, error)
}

// MiddlewareFunc adapts a function to the Middleware interface.
type MiddlewareFunc[S any] func(api API[S], action domain.Action, next Next) (any, error)

// Intercept implements Middleware.
func (f MiddlewareFunc[S]) Intercept(api API[S], action domain.Action, next Next) (any, error) {
	return f(api, action, next)
}

// Compose links middlewares in front of terminal.
// The first middleware is the outermost: it sees the raw action first and
// its next is the second middleware, and so on down to terminal.
// With no middlewares, Compose returns terminal itself.
func Compose[S any](api API[S], terminal Next, mws ...Middleware[S]) (Next, error) {
	next := terminal
	for i := len(mws) - 1; i >= 0; i-- {
		mw := mws[i]
		if mw == nil {
			return nil, fmt.Errorf("%w at position %d", domain.ErrNilMiddleware, i)
		}
		inner := next
		next = func(action domain.Action) (any, error) {
			return mw.Intercept(api, action, inner)
		}
	}
	return next, nil
}

// Creator builds a store. Enhancers wrap it.
type Creator[S any] func(r reducer.Reducer[S], preloaded *S) (*Store[S], error)

// Enhancer decorates store creation.
type Enhancer[S any] func(next Creator[S]) Creator[S]

// ApplyMiddleware returns the enhancer installing mws in registration order.
func ApplyMiddleware[S any](mws ...Middleware[S]) Enhancer[S] {
	mws = append([]Middleware[S](nil), mws...)
	return func(next Creator[S]) Creator[S] {
		return func(r reducer.Reducer[S], preloaded *S) (*Store[S], error) {
			s, err := next(r, preloaded)
			if err != nil {
				return nil, err
			}

			api := API[S]{
				Dispatch: s.Dispatch,
				GetState: s.GetState,
			}
			chain, err := Compose(api, s.dispatch, mws...)
			if err != nil {
				return nil, fmt.Errorf("failed to apply middleware: %w", err)
			}
			s.dispatch = chain
			return s, nil
		}
	}
}
