package domain

import "errors"

// ErrNilAction is returned when a nil action or an effect without a procedure is dispatched.
var ErrNilAction = errors.New("nil action")

// ErrNilReducer is returned when a store is built without a reducer.
var ErrNilReducer = errors.New("nil reducer")

// ErrNilMiddleware is returned when a middleware list contains nil.
var ErrNilMiddleware = errors.New("nil middleware")

// ErrBootstrap is returned when the reducer fails during store construction.
var ErrBootstrap = errors.New("store bootstrap failed")

// ErrReducerPanic wraps a panic recovered from a reducer call.
var ErrReducerPanic = errors.New("reducer panicked")

// ErrReentrantDispatch is returned when a reducer dispatches into its own store.
var ErrReentrantDispatch = errors.New("reducers may not dispatch actions")

// ErrUnhandledEffect is returned when an effect reaches the reducer step,
// which means no thunk middleware is installed.
var ErrUnhandledEffect = errors.New("effect reached the reducer; is the thunk middleware installed?")

// ErrEffectStateMismatch is returned when an effect was built for a different state type.
var ErrEffectStateMismatch = errors.New("effect does not match the store state type")
