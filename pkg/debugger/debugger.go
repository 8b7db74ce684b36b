// Package debugger implements the evaluator's external debugger
// interface: a set of notification hooks the evaluator calls
// unconditionally, which are no-ops unless a real debugger is attached.
package debugger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// Debugger is the interface the evaluator consumes. set_lineinfo/notify
// fire on (almost) every node walk; message_explicit is used for
// user-triggered breakpoint-style output; the stepping/continuing flags
// and tab_level counter are consulted by statement-level tracing.
type Debugger interface {
	SetLineInfo(file string, line int)
	Notify(event string, detail string)
	SetTopLevel(isTopLevel bool)
	MessageExplicit(level int, msg string)

	ExplicitEnabled() bool
	IsStepping() bool
	IsContinuing() bool
	TabLevel() int
	PushTab()
	PopTab()
}

// NopDebugger implements Debugger with no observable behavior. It is the
// default attached debugger, and the one pkg/call swaps in while running
// the redundancy checker so that a pass that installs no bindings also
// leaves no trace in a user-visible debugger session.
type NopDebugger struct{}

func (NopDebugger) SetLineInfo(string, int)        {}
func (NopDebugger) Notify(string, string)          {}
func (NopDebugger) SetTopLevel(bool)               {}
func (NopDebugger) MessageExplicit(int, string)    {}
func (NopDebugger) ExplicitEnabled() bool          { return false }
func (NopDebugger) IsStepping() bool               { return false }
func (NopDebugger) IsContinuing() bool             { return true }
func (NopDebugger) TabLevel() int                  { return 0 }
func (NopDebugger) PushTab()                       {}
func (NopDebugger) PopTab()                        {}

// ConsoleDebugger renders notifications to a colored terminal stream,
// using fatih/color for styling and go-colorable so color codes still
// render correctly on Windows consoles.
type ConsoleDebugger struct {
	out      io.Writer
	stepping bool
	tabLevel int
	curFile  string
	curLine  int
	topLevel bool
}

// NewConsoleDebugger returns a ConsoleDebugger in stepping mode. When w
// is nil it writes to a colorable-wrapped stdout so ANSI color codes
// still render on Windows consoles; an explicit w is used as-is.
func NewConsoleDebugger(w io.Writer) *ConsoleDebugger {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &ConsoleDebugger{out: w, stepping: true}
}

func (d *ConsoleDebugger) SetLineInfo(file string, line int) {
	d.curFile, d.curLine = file, line
}

func (d *ConsoleDebugger) Notify(event, detail string) {
	prefix := color.New(color.FgCyan, color.Bold).Sprint("[trace]")
	fmt.Fprintf(d.out, "%s%s %s:%d %s %s\n", indent(d.tabLevel), prefix, d.curFile, d.curLine, event, detail)
}

func (d *ConsoleDebugger) SetTopLevel(isTopLevel bool) { d.topLevel = isTopLevel }

func (d *ConsoleDebugger) MessageExplicit(level int, msg string) {
	label := color.New(color.FgYellow, color.Bold).Sprintf("[level %d]", level)
	fmt.Fprintf(d.out, "%s%s %s\n", indent(d.tabLevel), label, msg)
}

func (d *ConsoleDebugger) ExplicitEnabled() bool { return true }
func (d *ConsoleDebugger) IsStepping() bool       { return d.stepping }
func (d *ConsoleDebugger) IsContinuing() bool     { return !d.stepping }
func (d *ConsoleDebugger) TabLevel() int          { return d.tabLevel }
func (d *ConsoleDebugger) PushTab()               { d.tabLevel++ }
func (d *ConsoleDebugger) PopTab() {
	if d.tabLevel > 0 {
		d.tabLevel--
	}
}

func indent(level int) string {
	out := make([]byte, level*2)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
