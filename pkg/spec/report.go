package spec

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary accumulates the pass/fail tally for a run.
type Summary struct {
	Passes   int
	Failures int
}

// Total returns the number of completed spec attempts.
func (s Summary) Total() int {
	return s.Passes + s.Failures
}

// Reporter writes run progress to a console. Passing specs print a green
// dot, failing specs a red F plus the failure message and a blue filtered
// stack trace, and the run ends with a one-line tally.
type Reporter struct {
	w       io.Writer
	green   *color.Color
	red     *color.Color
	blue    *color.Color
	printer *message.Printer
}

// NewReporter creates a reporter writing to w. With enableColor false the
// output is plain text, for dumb terminals and tests.
func NewReporter(w io.Writer, enableColor bool) *Reporter {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	blue := color.New(color.FgBlue)
	if !enableColor {
		green.DisableColor()
		red.DisableColor()
		blue.DisableColor()
	}
	return &Reporter{
		w:       w,
		green:   green,
		red:     red,
		blue:    blue,
		printer: message.NewPrinter(language.English),
	}
}

// Begin prints the leading blank line before the first progress mark.
func (r *Reporter) Begin() {
	fmt.Fprintln(r.w)
}

// Pass prints the progress mark for a passing spec.
func (r *Reporter) Pass() {
	r.green.Fprint(r.w, ".")
}

// Fail prints the progress mark for a failing spec.
func (r *Reporter) Fail() {
	r.red.Fprint(r.w, "F")
}

// Failure prints a failure message and its filtered stack trace. It runs
// inside the recovery boundary, before the progress mark for the failing
// spec is printed.
func (r *Reporter) Failure(reason any, stack []byte) {
	r.red.Fprintf(r.w, "\n%v\n", reason)
	r.blue.Fprintln(r.w, FilterTrace(stack))
}

// Summary prints the final tally, red when anything failed and green
// otherwise.
func (r *Reporter) Summary(sum Summary) {
	line := r.printer.Sprintf("%d examples, %d failures", sum.Total(), sum.Failures)
	if sum.Failures > 0 {
		r.red.Fprintf(r.w, "\n\n%s\n", line)
	} else {
		r.green.Fprintf(r.w, "\n\n%s\n", line)
	}
}
