/*
Package store implements a single-state container with a middleware pipeline.

A Store owns one state value. The only way to change it is to dispatch a
domain.Command that reaches the reducer; every successful reduction replaces
the whole state and then notifies subscribers.

# Pipeline

	Dispatch(action) -> m1 -> m2 -> ... -> mn -> reducer step

Middlewares are registered with WithMiddleware (or ApplyMiddleware as an
Enhancer) and run outer to inner in registration order. Each receives the same
API whose Dispatch re-enters the pipeline at m1, so actions dispatched by a
middleware or a thunk go through the full chain again.

# Concurrency

Reducer calls are serialized. Middlewares and thunks run on the caller's
goroutine. A reducer that dispatches into its own store gets
domain.ErrReentrantDispatch; dispatching from other goroutines (for example
async thunk continuations) simply waits for its turn.
*/
package store
