package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	h := NewLogHooks(logger)

	h.OnWarning(Warning{Kind: "duplicate_throw", Message: "two throws share a cell", Fields: []any{"beat", 2}})
	out := buf.String()
	for _, want := range []string{"two throws share a cell", "kind=duplicate_throw", "beat=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("warning output %q missing %q", out, want)
		}
	}

	buf.Reset()
	h.OnEvent(Event{Kind: "orbit_closed"})
	if buf.Len() != 0 {
		t.Errorf("event logged at info level: %q", buf.String())
	}

	logger.SetLevel(log.DebugLevel)
	h.OnEvent(Event{Kind: "orbit_closed", Fields: []any{"orbit", 1}})
	if !strings.Contains(buf.String(), "orbit_closed") {
		t.Errorf("event output %q missing kind", buf.String())
	}
}
