package session

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"

	"westmarch/pkg/engine/iso"
	"westmarch/pkg/engine/terminal"
	"westmarch/pkg/game/movement"
)

// Console prints one line per movement request.
type Console struct {
	w       io.Writer
	colored bool
	seq     int

	styleSeq  color.Style
	styleKind map[movement.Kind]color.Style
}

// NewConsole creates a console backend writing to w
func NewConsole(w io.Writer, colored bool) *Console {
	return &Console{
		w:        w,
		colored:  colored,
		styleSeq: color.Style{color.FgGray},
		styleKind: map[movement.Kind]color.Style{
			movement.Stopped: color.Style{color.FgRed},
			movement.Walking: color.Style{color.FgGreen},
			movement.Running: color.Style{color.FgYellow, color.OpBold},
		},
	}
}

// UseColor resolves a session.color setting for the given output file.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return terminal.IsTerminal(f)
	}
}

// MoveRequest writes the request.
func (c *Console) MoveRequest(dir iso.Direction, kind movement.Kind) {
	c.seq++
	seq := fmt.Sprintf("#%04d", c.seq)
	label := fmt.Sprintf("%-8s", kind)
	if c.colored {
		seq = c.styleSeq.Sprint(seq)
		if st, ok := c.styleKind[kind]; ok {
			label = st.Sprint(label)
		}
	}
	fmt.Fprintf(c.w, "%s %s %s\n", seq, label, dir)
}
