package reducer

import (
	"fmt"

	"github.com/aretw0/flux/pkg/domain"
)

// Reducer computes the next state from the current state and an action.
// It must be pure and total: unknown actions return the state unchanged.
type Reducer[S any] func(state S, action domain.Action) S

// CaseFunc handles a single command type.
type CaseFunc[S any] func(state S, cmd domain.Command) S

// Builder assembles a Reducer from per-type cases.
type Builder[S any] struct {
	initial    S
	hasInitial bool
	cases      map[string]CaseFunc[S]
}

// New starts a reducer definition.
func New[S any]() *Builder[S] {
	return &Builder[S]{cases: make(map[string]CaseFunc[S])}
}

// Initial sets the default state returned on bootstrap when the store
// has no preloaded state. A preloaded state is kept even if it is the zero value.
func (b *Builder[S]) Initial(state S) *Builder[S] {
	b.initial = state
	b.hasInitial = true
	return b
}

// On registers the case for an action type. It panics on duplicates.
func (b *Builder[S]) On(actionType string, fn CaseFunc[S]) *Builder[S] {
	if fn == nil {
		panic(fmt.Sprintf("reducer: nil case for %q", actionType))
	}
	if _, exists := b.cases[actionType]; exists {
		panic(fmt.Sprintf("reducer: multiple registrations for %q", actionType))
	}
	b.cases[actionType] = fn
	return b
}

// Build returns the Reducer. Later changes to the Builder do not affect it.
func (b *Builder[S]) Build() Reducer[S] {
	cases := make(map[string]CaseFunc[S], len(b.cases))
	for k, v := range b.cases {
		cases[k] = v
	}
	initial, hasInitial := b.initial, b.hasInitial

	return func(state S, action domain.Action) S {
		cmd, ok := asCommand(action)
		if !ok {
			return state
		}

		if cmd.Type == domain.ActionInit && hasInitial && !domain.IsPreloadedInit(cmd) {
			state = initial
		}

		fn, ok := cases[cmd.Type]
		if !ok {
			return state
		}
		return fn(state, cmd)
	}
}

// Chain runs reducers in order, each receiving the previous output.
func Chain[S any](reducers ...Reducer[S]) Reducer[S] {
	rs := make([]Reducer[S], 0, len(reducers))
	for _, r := range reducers {
		if r != nil {
			rs = append(rs, r)
		}
	}
	return func(state S, action domain.Action) S {
		for _, r := range rs {
			state = r(state, action)
		}
		return state
	}
}

func asCommand(action domain.Action) (domain.Command, bool) {
	switch c := action.(type) {
	case domain.Command:
		return c, true
	case *domain.Command:
		if c != nil {
			return *c, true
		}
	}
	return domain.Command{}, false
}
