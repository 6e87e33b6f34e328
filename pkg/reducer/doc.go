/*
Package reducer defines the reducer contract and helpers to compose reducers.

A Reducer is a pure function from (state, action) to the next state. It must
return a valid state for every action, returning the incoming state unchanged
for action types it does not recognize. Reducers never see effects: the thunk
middleware consumes them before the reducer step.

# Building Reducers

	r := reducer.New[State]().
		Initial(State{}).
		On("INCREMENT", func(s State, _ domain.Command) State {
			s.Count++
			return s
		}).
		Build()

Initial supplies the default state. The store runs the reducer once with
domain.ActionInit when it is built; if no state was preloaded the reducer
receives the zero value and answers with its default.
*/
package reducer
