package middleware

import (
	"log/slog"
	"time"

	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/store"
)

// Logging logs every action passing through it and the outcome of the rest of the chain.
func Logging[S any](logger *slog.Logger) store.MiddlewareFunc[S] {
	return func(api store.API[S], action domain.Action, next store.Next) (any, error) {
		kind, typ := action.Kind(), domain.TypeOf(action)
		logger.Debug("Dispatch", "kind", kind.String(), "type", typ)

		start := time.Now()
		res, err := next(action)
		if err != nil {
			logger.Warn("Dispatch Failed", "kind", kind.String(), "type", typ, "duration", time.Since(start), "err", err)
			return res, err
		}

		logger.Debug("Dispatch Done", "kind", kind.String(), "type", typ, "duration", time.Since(start))
		return res, nil
	}
}
