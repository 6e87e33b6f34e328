package app

import (
	"github.com/aretw0/flux/pkg/domain"
	"github.com/aretw0/flux/pkg/reducer"
)

// Reducer returns the application reducer.
func Reducer() reducer.Reducer[State] {
	return reducer.New[State]().
		Initial(InitState()).
		On(ActionSetUser, setUser).
		On(ActionIncrement, func(s State, _ domain.Command) State {
			s.Count++
			return s
		}).
		On(ActionDecrement, func(s State, _ domain.Command) State {
			s.Count--
			return s
		}).
		Build()
}

// setUser accepts a UserInfo or a map (e.g. from YAML); anything else passes through.
func setUser(s State, cmd domain.Command) State {
	u, err := reducer.Payload[UserInfo](cmd)
	if err != nil {
		return s
	}
	s.UserInfo = u
	return s
}
