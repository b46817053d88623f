package report

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"

	"github.com/sarchlab/r32sim/emu"
)

const fallbackLocale = "en-US"

// Reporter prints run summaries through a locale-aware printer.
type Reporter struct {
	w       io.Writer
	printer *message.Printer
}

// NewReporter creates a Reporter for the user's locale.
func NewReporter(w io.Writer) *Reporter {
	locales, err := locale.GetLocales()
	if err != nil || len(locales) == 0 {
		locales = []string{fallbackLocale}
	}

	return NewReporterForLocales(w, locales...)
}

// NewReporterForLocales creates a Reporter for the best match among locales.
func NewReporterForLocales(w io.Writer, locales ...string) *Reporter {
	return &Reporter{
		w:       w,
		printer: message.NewPrinter(message.MatchLanguage(locales...)),
	}
}

// FinalState prints the registers, flags, halt reason and instruction count
// of a finished run.
func (r *Reporter) FinalState(result *emu.Result) {
	r.printer.Fprintf(r.w, "\n=== Final CPU State ===\n")
	for i, v := range result.Regs.R {
		r.printer.Fprintf(r.w, "R%d: 0x%x\n", i, v)
	}
	r.printer.Fprintf(r.w, "Flags: %s\n", result.Regs.Flags.String())
	r.printer.Fprintf(r.w, "Halt: %s\n", result.Halt.String())
	r.printer.Fprintf(r.w, "Instructions: %d\n", result.InstructionCount)
}

// Fault prints the error that aborted a run.
func (r *Reporter) Fault(err error) {
	r.printer.Fprintf(r.w, "Fault: %v\n", err)
}

// Dump writes a structural dump of a result.
func Dump(w io.Writer, result *emu.Result) {
	io.WriteString(w, spew.Sdump(result))
}
