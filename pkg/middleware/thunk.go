package middleware

import (
	"fmt"

	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/store"
)

// ThunkMiddleware runs effect actions instead of forwarding them.
// Its extra argument is fixed at construction.
type ThunkMiddleware[S any] struct {
	extra any
}

// Thunk returns a thunk middleware with no extra argument.
func Thunk[S any]() *ThunkMiddleware[S] {
	return &ThunkMiddleware[S]{}
}

// WithExtraArgument returns a thunk middleware passing extra to every thunk.
func WithExtraArgument[S any](extra any) *ThunkMiddleware[S] {
	return &ThunkMiddleware[S]{extra: extra}
}

// WithExtraArgument returns a new, independent instance bound to extra.
// The receiver is not modified.
func (m *ThunkMiddleware[S]) WithExtraArgument(extra any) *ThunkMiddleware[S] {
	return WithExtraArgument[S](extra)
}

// ExtraArgument returns the bound extra argument.
func (m *ThunkMiddleware[S]) ExtraArgument() any {
	return m.extra
}

// Intercept implements store.Middleware.
// Effects are invoked with the store's chain-entry dispatch and never reach
// next; their result and error are returned unchanged. Commands are forwarded.
func (m *ThunkMiddleware[S]) Intercept(api store.API[S], action domain.Action, next store.Next) (any, error) {
	if domain.IsNil(action) {
		return nil, domain.ErrNilAction
	}
	if action.Kind() != domain.KindEffect {
		return next(action)
	}

	thunk, ok := domain.ThunkOf[S](action)
	if !ok {
		if isEffectOf[S](action) {
			return nil, fmt.Errorf("%w: %s has no procedure", domain.ErrNilAction, domain.TypeOf(action))
		}
		return nil, fmt.Errorf("%w: %T", domain.ErrEffectStateMismatch, action)
	}
	return thunk(api.Dispatch, api.GetState, m.extra)
}

// isEffectOf reports whether a is an effect typed for S, whatever its procedure.
func isEffectOf[S any](a domain.Action) bool {
	switch a.(type) {
	case domain.Thunk[S], domain.Effect[S], *domain.Effect[S]:
		return true
	}
	return false
}
