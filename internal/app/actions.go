package app

import "github.com/aretw0/flux/pkg/domain"

// Action types handled by Reducer.
const (
	ActionSetUser   = "SET_USER"
	ActionIncrement = "INCREMENT"
	ActionDecrement = "DECREMENT"
)

// SetUser replaces the current user.
func SetUser(u UserInfo) domain.Command {
	return domain.Command{Type: ActionSetUser, Payload: u}
}

// Increment adds one to the counter.
func Increment() domain.Command {
	return domain.Command{Type: ActionIncrement}
}

// Decrement subtracts one from the counter.
func Decrement() domain.Command {
	return domain.Command{Type: ActionDecrement}
}

// SetUserFields replaces the current user from loosely typed fields
// (e.g. form or config input). The reducer decodes them into UserInfo.
func SetUserFields(fields map[string]any) domain.Command {
	return domain.Command{Type: ActionSetUser, Payload: fields}
}
