package middleware_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/middleware"
	"github.com/aretw0/flux/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := store.New(testReducer(), store.WithMiddleware[state](
		middleware.Logging[state](logger),
		middleware.Thunk[state](),
	))
	require.NoError(t, err)

	_, err = s.Dispatch(domain.Command{Type: "INCREMENT"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg=Dispatch kind=command type=INCREMENT`)
	assert.Contains(t, out, `msg="Dispatch Done" kind=command type=INCREMENT`)

	buf.Reset()
	_, err = s.Dispatch(domain.Effect[state]{
		Name: "FAIL",
		Run: func(domain.Dispatch, domain.GetState[state], any) (any, error) {
			return nil, assert.AnError
		},
	})
	require.Error(t, err)

	out = buf.String()
	assert.Contains(t, out, `level=WARN msg="Dispatch Failed" kind=effect type=FAIL`)
	assert.Contains(t, out, "err=")
}
