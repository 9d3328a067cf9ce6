package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear     = "\x1b[2J\x1b[H"
	ansiMoveTo    = "\x1b[%d;%dH"
	cellColumns   = 2 // terminal columns per cell
	statusLineGap = 1
)

// TerminalRenderer draws a game onto an ANSI terminal.
// After the first full frame only cells that changed are redrawn.
type TerminalRenderer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer renders to out; colors toggles ANSI color output
func NewTerminalRenderer(out io.Writer, colors bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, au: aurora.NewAurora(colors)}
}

func (r *TerminalRenderer) glyph(alive bool) string {
	if alive {
		return r.au.Yellow(gridPosBlock).String()
	}
	return gridPosEmpty
}

// Display renders the whole grid from the top-left corner
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	fmt.Fprint(w, ansiClear)
	for y := range g.height {
		for x := range g.width {
			fmt.Fprint(w, r.glyph(g.rows[y][x].alive))
		}
		fmt.Fprintln(w)
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write frame")
}

// Update redraws only the cells that changed in the last tick.
// Before the first tick it falls back to a full frame.
func (r *TerminalRenderer) Update(gm *Game) error {
	changed, full := gm.Changes()
	if full {
		return r.Display(gm.Grid())
	}

	w := bufio.NewWriter(r.out)
	for _, p := range changed {
		fmt.Fprintf(w, ansiMoveTo, p.Y+1, p.X*cellColumns+1)
		fmt.Fprint(w, r.glyph(p.Alive))
	}
	// park the cursor below the grid for the status line
	fmt.Fprintf(w, ansiMoveTo, gm.Height()+statusLineGap, 1)
	return errors.Wrap(w.Flush(), "[Update] failed to write changes")
}

// Status writes a one-line summary of the game under the grid
func (r *TerminalRenderer) Status(s Snapshot, extra string) error {
	state := r.au.Green(s.State.String()).String()
	if s.State == Over {
		state = r.au.Red(fmt.Sprintf("%s at %d", s.State, s.FinalGeneration)).String()
	}
	_, err := fmt.Fprintf(r.out, "\x1b[KGen: %d | Living: %d | Status: %s%s\n",
		s.Generation, s.LivingCells, state, extra)
	return errors.Wrap(err, "[Status] failed to write status")
}
