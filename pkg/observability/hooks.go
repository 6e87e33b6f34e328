package observability

import (
	"sync"

	"github.com/aretw0/flux/pkg/domain"
)

// Combine merges hooks into a single set. Each callback runs the non-nil
// callbacks of hooks in order. Unused slots stay nil.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var onDispatch []func(*domain.DispatchEvent)
	var onReduce []func(*domain.ReduceEvent)
	var onNotify []func(*domain.NotifyEvent)
	for _, h := range hooks {
		if h.OnDispatch != nil {
			onDispatch = append(onDispatch, h.OnDispatch)
		}
		if h.OnReduce != nil {
			onReduce = append(onReduce, h.OnReduce)
		}
		if h.OnNotify != nil {
			onNotify = append(onNotify, h.OnNotify)
		}
	}

	var out domain.LifecycleHooks
	if len(onDispatch) > 0 {
		out.OnDispatch = func(e *domain.DispatchEvent) {
			for _, fn := range onDispatch {
				fn(e)
			}
		}
	}
	if len(onReduce) > 0 {
		out.OnReduce = func(e *domain.ReduceEvent) {
			for _, fn := range onReduce {
				fn(e)
			}
		}
	}
	if len(onNotify) > 0 {
		out.OnNotify = func(e *domain.NotifyEvent) {
			for _, fn := range onNotify {
				fn(e)
			}
		}
	}
	return out
}

// Recorder keeps the last events seen by its hooks.
type Recorder struct {
	mu     sync.Mutex
	limit  int
	events []any
}

// NewRecorder creates a recorder holding up to limit events.
// A limit <= 0 keeps everything.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Hooks returns lifecycle hooks that feed the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) { r.add(*e) },
		OnReduce:   func(e *domain.ReduceEvent) { r.add(*e) },
		OnNotify:   func(e *domain.NotifyEvent) { r.add(*e) },
	}
}

func (r *Recorder) add(e any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	if r.limit > 0 && len(r.events) > r.limit {
		r.events = append(r.events[:0:0], r.events[len(r.events)-r.limit:]...)
	}
}

// Events returns a copy of the recorded events, oldest first.
// Elements are domain.DispatchEvent, domain.ReduceEvent or domain.NotifyEvent values.
func (r *Recorder) Events() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.events...)
}

// Types returns the action types of the recorded dispatch events.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var types []string
	for _, e := range r.events {
		if d, ok := e.(domain.DispatchEvent); ok {
			types = append(types, d.Type)
		}
	}
	return types
}
