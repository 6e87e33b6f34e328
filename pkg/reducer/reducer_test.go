package reducer_test

import (
	"testing"

	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/reducer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type user struct {
	ID   int    `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type state struct {
	User  user
	Count int
	Tags  []string
}

func countReducer() reducer.Reducer[state] {
	return reducer.New[state]().
		Initial(state{Count: 10}).
		On("INCREMENT", func(s state, _ domain.Command) state {
			s.Count++
			return s
		}).
		Build()
}

func TestBuilder_InitialOnBootstrap(t *testing.T) {
	r := countReducer()

	got := r(state{}, domain.Command{Type: domain.ActionInit})
	assert.Equal(t, 10, got.Count)
}

func TestBuilder_PreloadedStateWinsOverInitial(t *testing.T) {
	r := countReducer()
	preloaded := domain.Command{Type: domain.ActionInit, Payload: domain.InitInfo{Preloaded: true}}

	got := r(state{Count: 3}, preloaded)
	assert.Equal(t, 3, got.Count)

	// A zero value is still a preloaded state.
	got = r(state{}, preloaded)
	assert.Equal(t, 0, got.Count)

	got = r(state{}, domain.Command{Type: domain.ActionInit, Payload: domain.InitInfo{}})
	assert.Equal(t, 10, got.Count, "bootstrap without preloaded state uses the default")
}

func TestBuilder_InitialOnlyOnBootstrap(t *testing.T) {
	r := countReducer()

	// A zero state outside bootstrap is a legitimate state and is kept.
	got := r(state{}, domain.Command{Type: "INCREMENT"})
	assert.Equal(t, 1, got.Count)
}

func TestBuilder_Passthrough(t *testing.T) {
	r := countReducer()
	s := state{User: user{ID: 1, Name: "a"}, Count: 4, Tags: []string{"x"}}

	for _, action := range []domain.Action{
		domain.Command{Type: "UNKNOWN"},
		domain.Command{},
		domain.Thunk[state](func(domain.Dispatch, domain.GetState[state], any) (any, error) { return nil, nil }),
	} {
		got := r(s, action)
		if diff := cmp.Diff(s, got); diff != "" {
			t.Errorf("expected passthrough for %#v (-want +got):\n%s", action, diff)
		}
		// Same backing array: nothing was copied or rebuilt.
		assert.Same(t, &s.Tags[0], &got.Tags[0])
	}
}

func TestBuilder_PointerCommand(t *testing.T) {
	r := countReducer()
	got := r(state{Count: 1}, &domain.Command{Type: "INCREMENT"})
	assert.Equal(t, 2, got.Count)
}

func TestBuilder_DuplicateCasePanics(t *testing.T) {
	b := reducer.New[state]().On("A", func(s state, _ domain.Command) state { return s })
	assert.Panics(t, func() {
		b.On("A", func(s state, _ domain.Command) state { return s })
	})
	assert.Panics(t, func() {
		b.On("B", nil)
	})
}

func TestBuilder_BuildIsolatedFromLaterChanges(t *testing.T) {
	b := reducer.New[state]()
	r := b.Build()
	b.On("INCREMENT", func(s state, _ domain.Command) state {
		s.Count++
		return s
	})

	assert.Equal(t, 0, r(state{}, domain.Command{Type: "INCREMENT"}).Count)
	assert.Equal(t, 1, b.Build()(state{}, domain.Command{Type: "INCREMENT"}).Count)
}

func TestChain(t *testing.T) {
	double := reducer.New[state]().
		On("INCREMENT", func(s state, _ domain.Command) state {
			s.Count *= 2
			return s
		}).
		Build()

	r := reducer.Chain(countReducer(), nil, double)

	got := r(state{Count: 1}, domain.Command{Type: "INCREMENT"})
	assert.Equal(t, 4, got.Count) // (1+1)*2
}
