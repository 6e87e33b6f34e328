package domain

import "reflect"

// ActionKind classifies an Action.
type ActionKind int

const (
	// KindCommand marks plain data actions consumed by reducers.
	KindCommand ActionKind = iota + 1

	// KindEffect marks callable actions consumed by the thunk middleware.
	KindEffect
)

func (k ActionKind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Action is a value dispatched to a store.
// It is either a Command (data) or an Effect (procedure).
type Action interface {
	Kind() ActionKind
}

// Command is a plain tagged record describing a requested state change.
type Command struct {
	Type    string `json:"type" yaml:"type"`
	Payload any    `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Kind implements Action.
func (Command) Kind() ActionKind { return KindCommand }

// Dispatch sends an action into the store pipeline.
// The result is whatever the innermost step returned.
type Dispatch func(Action) (any, error)

// GetState reads the current state snapshot of a store.
type GetState[S any] func() S

// Thunk is a callable action. It never reaches the reducer; the thunk
// middleware invokes it with the store capabilities and its bound extra argument.
type Thunk[S any] func(dispatch Dispatch, getState GetState[S], extra any) (any, error)

// Kind implements Action.
func (Thunk[S]) Kind() ActionKind { return KindEffect }

// Effect wraps a Thunk as a named action value.
type Effect[S any] struct {
	// Name is informational (logs, metrics). Optional.
	Name string
	Run  Thunk[S]
}

// Kind implements Action.
func (Effect[S]) Kind() ActionKind { return KindEffect }

// ThunkOf extracts the procedure of an effect action typed for state S.
// It returns false for commands, nil procedures, and effects of other state types.
func ThunkOf[S any](a Action) (Thunk[S], bool) {
	switch e := a.(type) {
	case Thunk[S]:
		return e, e != nil
	case Effect[S]:
		return e.Run, e.Run != nil
	case *Effect[S]:
		if e == nil {
			return nil, false
		}
		return e.Run, e.Run != nil
	}
	return nil, false
}

// IsNil reports whether a is nil or holds a nil pointer or func, such as a
// nil *Command, a nil *Effect or a nil Thunk.
func IsNil(a Action) bool {
	if a == nil {
		return true
	}
	switch v := reflect.ValueOf(a); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// TypeOf returns a printable type for an action.
// Commands report their Type, effects their Name or EffectType.
func TypeOf(a Action) string {
	switch v := a.(type) {
	case nil:
		return ""
	case Command:
		return v.Type
	case *Command:
		if v == nil {
			return ""
		}
		return v.Type
	case interface{ EffectName() string }:
		if n := v.EffectName(); n != "" {
			return n
		}
	}
	if a.Kind() == KindEffect {
		return EffectType
	}
	return ""
}

// EffectName implements the naming hook used by TypeOf.
func (e Effect[S]) EffectName() string { return e.Name }
