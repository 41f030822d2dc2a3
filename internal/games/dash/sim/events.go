package sim

import "github.com/vovakirdan/northern-dash/internal/core"

// Listener receives notifications as they happen during Step.
type Listener interface {
	OnEvent(ev core.Event)
	OnGameOver(result RunResult)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Event    func(core.Event)
	GameOver func(RunResult)
}

// OnEvent calls Event if set.
func (f ListenerFuncs) OnEvent(ev core.Event) {
	if f.Event != nil {
		f.Event(ev)
	}
}

// OnGameOver calls GameOver if set.
func (f ListenerFuncs) OnGameOver(result RunResult) {
	if f.GameOver != nil {
		f.GameOver(result)
	}
}

// emit records an event for the current frame.
func (e *Engine) emit(ev core.Event) {
	e.events = append(e.events, ev)
	if e.listener != nil {
		e.listener.OnEvent(ev)
	}
}
