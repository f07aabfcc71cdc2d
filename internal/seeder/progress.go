package seeder

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var spinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Progress prints a spinner and a current/total counter after each unit.
// On a terminal the line is rewritten in place, otherwise every step gets
// its own line.
type Progress struct {
	out        io.Writer
	total      int
	current    int
	spinnerIdx int
	inPlace    bool
	start      time.Time
	now        func() time.Time
}

func NewProgress(out io.Writer, total int, now func() time.Time) *Progress {
	return &Progress{
		out:     out,
		total:   total,
		inPlace: isTerminal(out),
		start:   now(),
		now:     now,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Progress) Step() {
	p.current++
	glyph := color.CyanString(spinner[p.spinnerIdx])
	p.spinnerIdx = (p.spinnerIdx + 1) % len(spinner)

	if p.inPlace {
		fmt.Fprintf(p.out, "\r%s %d/%d", glyph, p.current, p.total)
		return
	}
	fmt.Fprintf(p.out, "%s %d/%d\n", glyph, p.current, p.total)
}

// Done ends the progress line and reports the elapsed wall-clock time.
func (p *Progress) Done() time.Duration {
	elapsed := p.now().Sub(p.start)
	if p.inPlace && p.current > 0 {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, color.GreenString("✅ Done in %s", elapsed.Round(time.Millisecond)))
	return elapsed
}
