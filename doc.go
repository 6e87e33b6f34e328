/*
Package flux is a unidirectional state container for Go.

A store holds one state value. The state changes only when a command is
dispatched and the reducer, a pure function, computes the next value.
Middlewares sit between Dispatch and the reducer; the thunk middleware lets
procedures ("thunks") run side effects and dispatch commands later.

# Concept

	Dispatch(action) -> middlewares (outer to inner) -> reducer -> new state -> subscribers

Commands are plain data (domain.Command). Effects (domain.Thunk,
domain.Effect) are procedures the thunk middleware invokes with Dispatch,
GetState and its extra argument; they never reach the reducer.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/flux"
		"github.com/aretw0/flux/pkg/domain"
		"github.com/aretw0/flux/pkg/reducer"
	)

	type State struct{ Count int }

	func main() {
		r := reducer.New[State]().
			On("INCREMENT", func(s State, _ domain.Command) State {
				s.Count++
				return s
			}).
			Build()

		s, err := flux.New(r)
		if err != nil {
			log.Fatal(err)
		}

		// Plain command: reaches the reducer.
		if _, err := s.Dispatch(domain.Command{Type: "INCREMENT"}); err != nil {
			log.Fatal(err)
		}

		// Thunk: runs in the middleware, dispatches through the full chain.
		res, _ := s.Dispatch(domain.Thunk[State](func(dispatch domain.Dispatch, getState domain.GetState[State], _ any) (any, error) {
			_, err := dispatch(domain.Command{Type: "INCREMENT"})
			return getState().Count, err
		}))
		fmt.Println(res) // 2
	}

The building blocks live in pkg/store (store and composition), pkg/reducer
(reducer helpers) and pkg/middleware (thunk, logging, metrics, futures).
*/
package flux
