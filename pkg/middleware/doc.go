/*
Package middleware provides store middlewares.

  - Thunk: Runs effect actions (thunks) with Dispatch, GetState and a bound extra argument.
  - Logging: Logs actions and their outcome with slog.
  - MetricsMiddleware: Records dispatch counts, errors and durations in Prometheus collectors.

Thunks that start asynchronous work usually return a Future, which callers
Await with a context.

	thunk := middleware.WithExtraArgument[State](env)
	s, err := store.New(r, store.WithMiddleware[State](thunk))
*/
package middleware
