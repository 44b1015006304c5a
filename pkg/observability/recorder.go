package observability

import "sync"

// Recorder is a TraceHooks implementation that keeps every warning and
// event in memory. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	warnings []Warning
	events   []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnWarning(w Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

func (r *Recorder) OnEvent(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Warnings returns a copy of the recorded warnings.
func (r *Recorder) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Warning(nil), r.warnings...)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// WarningKinds returns the kinds of the recorded warnings in order.
func (r *Recorder) WarningKinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]string, len(r.warnings))
	for i, w := range r.warnings {
		kinds[i] = w.Kind
	}
	return kinds
}

// CountEvents returns how many events of the given kind were recorded.
func (r *Recorder) CountEvents(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Fanout forwards trace events to several hooks in order.
type Fanout []TraceHooks

func (f Fanout) OnWarning(w Warning) {
	for _, h := range f {
		h.OnWarning(w)
	}
}

func (f Fanout) OnEvent(e Event) {
	for _, h := range f {
		h.OnEvent(e)
	}
}
