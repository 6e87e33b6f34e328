package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testState struct{ N int }

func noopThunk(Dispatch, GetState[testState], any) (any, error) { return nil, nil }

func TestActionKinds(t *testing.T) {
	assert.Equal(t, KindCommand, Command{Type: "X"}.Kind())
	assert.Equal(t, KindEffect, Thunk[testState](noopThunk).Kind())
	assert.Equal(t, KindEffect, Effect[testState]{Run: noopThunk}.Kind())

	assert.Equal(t, "command", KindCommand.String())
	assert.Equal(t, "effect", KindEffect.String())
	assert.Equal(t, "unknown", ActionKind(0).String())
}

func TestThunkOf(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   bool
	}{
		{"Bare Thunk", Thunk[testState](noopThunk), true},
		{"Effect Value", Effect[testState]{Run: noopThunk}, true},
		{"Effect Pointer", &Effect[testState]{Run: noopThunk}, true},
		{"Nil Effect Pointer", (*Effect[testState])(nil), false},
		{"Effect Without Run", Effect[testState]{}, false},
		{"Nil Thunk", Thunk[testState](nil), false},
		{"Command", Command{Type: "X"}, false},
		{"Other State Type", Thunk[int](func(Dispatch, GetState[int], any) (any, error) { return nil, nil }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thunk, ok := ThunkOf[testState](tt.action)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.NotNil(t, thunk)
			}
		})
	}
}

func TestIsNil(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   bool
	}{
		{"untyped nil", nil, true},
		{"nil command pointer", (*Command)(nil), true},
		{"nil effect pointer", (*Effect[int])(nil), true},
		{"nil thunk", Thunk[int](nil), true},
		{"command", Command{Type: "X"}, false},
		{"command pointer", &Command{Type: "X"}, false},
		{"thunk", Thunk[testState](noopThunk), false},
		{"effect value", Effect[int]{Name: "E"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNil(tt.action))
		})
	}
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "SET_USER", TypeOf(Command{Type: "SET_USER"}))
	assert.Equal(t, "SET_USER", TypeOf(&Command{Type: "SET_USER"}))
	assert.Equal(t, "FETCH", TypeOf(Effect[testState]{Name: "FETCH", Run: noopThunk}))
	assert.Equal(t, EffectType, TypeOf(Effect[testState]{Run: noopThunk}))
	assert.Equal(t, EffectType, TypeOf(Thunk[testState](noopThunk)))
	assert.Equal(t, "", TypeOf(nil))
}

func TestIsPreloadedInit(t *testing.T) {
	assert.True(t, IsPreloadedInit(Command{Type: ActionInit, Payload: InitInfo{Preloaded: true}}))
	assert.True(t, IsPreloadedInit(Command{Type: ActionInit, Payload: &InitInfo{Preloaded: true}}))
	assert.False(t, IsPreloadedInit(Command{Type: ActionInit, Payload: InitInfo{}}))
	assert.False(t, IsPreloadedInit(Command{Type: ActionInit}))
	assert.False(t, IsPreloadedInit(Command{Type: "OTHER", Payload: InitInfo{Preloaded: true}}))
}
