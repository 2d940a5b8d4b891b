package pipeline

import "log"

// #region recorder

// Recorder receives stage transitions and notable events from a pipeline
// invocation. Injected so callers choose their own observability sink; no
// process-wide state.
type Recorder interface {
	Stage(name string)
	Event(name string, detail string)
}

// #endregion recorder

// #region nop

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) Stage(string)         {}
func (NopRecorder) Event(string, string) {}

// #endregion nop

// #region log-recorder

// LogRecorder writes stages and events to the standard logger.
type LogRecorder struct{}

func (LogRecorder) Stage(name string) {
	log.Printf("[PIPE] stage=%s", name)
}

func (LogRecorder) Event(name, detail string) {
	log.Printf("[PIPE] event=%s %s", name, detail)
}

// #endregion log-recorder
