// Package tracing provides the evaluator's call-trace stack and
// structured-logging front door: a hclog.Logger (grounded on the
// corpus's hashicorp/go-hclog usage) and a per-run correlation id
// (grounded on the corpus's google/uuid usage) attached to every log
// line so that a single interpreter run's log output can be
// disambiguated from any other.
package tracing

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Line is one call-site location pushed onto the trace stack when a call
// begins and popped when it ends, regardless of how the call exits.
type Line struct {
	File string
	Line int
	Func string
}

func (l Line) String() string {
	if l.File == "" {
		return fmt.Sprintf("%s:%d", l.Func, l.Line)
	}
	return fmt.Sprintf("%s:%d in %s", l.File, l.Line, l.Func)
}

// Tracer owns the call-trace stack and the logger every evaluator
// component logs through.
type Tracer struct {
	RunID string
	log   hclog.Logger
	stack []Line
}

// New builds a Tracer with a fresh run-correlation id and an hclog logger
// at the given name/level, writing to w (os.Stderr when w is nil).
func New(name string, level hclog.Level, w *os.File) *Tracer {
	out := w
	if out == nil {
		out = os.Stderr
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: out,
	})
	runID := uuid.NewString()
	return &Tracer{RunID: runID, log: logger.With("run_id", runID)}
}

// Logger returns the underlying structured logger.
func (t *Tracer) Logger() hclog.Logger { return t.log }

// Push records a call-site location on the trace stack.
func (t *Tracer) Push(l Line) {
	t.stack = append(t.stack, l)
	t.log.Trace("call enter", "site", l.String(), "depth", len(t.stack))
}

// Pop removes the most recently pushed call-site location. It is a no-op
// on an empty stack, since callers restore defensively across every exit
// path of a call.
func (t *Tracer) Pop() {
	n := len(t.stack)
	if n == 0 {
		return
	}
	t.log.Trace("call exit", "site", t.stack[n-1].String(), "depth", n)
	t.stack = t.stack[:n-1]
}

// Depth reports the current trace-stack depth.
func (t *Tracer) Depth() int { return len(t.stack) }

// Top returns the innermost trace entry and whether the stack is
// non-empty.
func (t *Tracer) Top() (Line, bool) {
	if len(t.stack) == 0 {
		return Line{}, false
	}
	return t.stack[len(t.stack)-1], true
}

// Snapshot renders the current stack outermost-first, for diagnostics.
func (t *Tracer) Snapshot() []string {
	out := make([]string, len(t.stack))
	for i, l := range t.stack {
		out[i] = l.String()
	}
	return out
}
