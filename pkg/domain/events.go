package domain

import (
	"time"
)

// DispatchEvent describes an action entering a store pipeline.
type DispatchEvent struct {
	Timestamp time.Time  `json:"timestamp"`
	Kind      ActionKind `json:"kind"`
	Type      string     `json:"type"`
}

// ReduceEvent describes a completed reducer step.
type ReduceEvent struct {
	DispatchEvent
	Duration time.Duration `json:"duration"`
}

// NotifyEvent describes a subscriber notification round.
type NotifyEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Listeners int       `json:"listeners"`
}

// LifecycleHooks defines callbacks for store observability.
// Hooks run synchronously on the dispatching goroutine and must not dispatch.
type LifecycleHooks struct {
	OnDispatch func(*DispatchEvent)
	OnReduce   func(*ReduceEvent)
	OnNotify   func(*NotifyEvent)
}
