package observability

import "github.com/charmbracelet/log"

// LogHooks forwards trace output to a charm logger: warnings at warn level,
// events at debug level. Fields are passed through as key/value pairs.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns trace hooks that log to l.
func NewLogHooks(l *log.Logger) LogHooks {
	return LogHooks{Logger: l}
}

func (h LogHooks) OnWarning(w Warning) {
	h.Logger.Warn(w.Message, append([]any{"kind", w.Kind}, w.Fields...)...)
}

func (h LogHooks) OnEvent(e Event) {
	h.Logger.Debug(e.Kind, e.Fields...)
}
