package app

// UserInfo identifies the current user.
type UserInfo struct {
	ID   int    `json:"id" yaml:"id" mapstructure:"id"`
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

// State is the demo application state tree.
// It is a value type: copies never share mutable memory.
type State struct {
	UserInfo UserInfo `json:"user_info" yaml:"user_info" mapstructure:"user_info"`
	Count    int      `json:"count" yaml:"count" mapstructure:"count"`
}

// InitState returns the default state.
func InitState() State {
	return State{
		UserInfo: UserInfo{ID: 0, Name: ""},
		Count:    0,
	}
}

// SelectUserInfo is the selector used by the user view.
func SelectUserInfo(s State) UserInfo {
	return s.UserInfo
}

// SelectCount is the selector used by the counter view.
func SelectCount(s State) int {
	return s.Count
}
