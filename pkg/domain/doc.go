/*
Package domain contains the core vocabulary shared by the flux packages.

It defines what can be dispatched to a store, the errors the pipeline
reports, and the lifecycle events a store emits. This package is kept pure
and free of external dependencies.

# Key Entities

  - Action: Either a Command (plain data for reducers) or an Effect (a procedure for the thunk middleware).
  - Thunk: A procedure receiving Dispatch, GetState and the middleware's extra argument.
  - LifecycleHooks: Callbacks for dispatch, reduce and notify events.
*/
package domain
