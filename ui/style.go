package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorStart = lipgloss.Color("35")  // green
	colorEnd   = lipgloss.Color("167") // soft red
	colorFish  = lipgloss.Color("75")  // light blue

	// from dim to bright
	levelColors = []lipgloss.Color{"240", "245", "250", "36", "75", "220", "214", "208"}
)

// NewRenderer returns a lipgloss renderer for w. When force is set colors
// are emitted even if w is not a terminal.
func NewRenderer(w io.Writer, force bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// Colorizer styles rendered art symbol by symbol. Symbols found in the palette
// are colored by their level, the two last palette symbols are the start and
// end markers. Without a palette every visible symbol gets the same color.
type Colorizer struct {
	palette []rune
	levels  []lipgloss.Style
	start   lipgloss.Style
	end     lipgloss.Style
	plain   lipgloss.Style
}

func NewColorizer(r *lipgloss.Renderer, palette string) *Colorizer {
	c := Colorizer{
		palette: []rune(palette),
		start:   r.NewStyle().Bold(true).Foreground(colorStart),
		end:     r.NewStyle().Bold(true).Foreground(colorEnd),
		plain:   r.NewStyle().Foreground(colorFish),
	}
	for _, col := range levelColors {
		c.levels = append(c.levels, r.NewStyle().Foreground(col))
	}
	return &c
}

func (c *Colorizer) style(sym rune) (lipgloss.Style, bool) {
	n := len(c.palette)
	idx := -1
	for i, p := range c.palette {
		if p == sym {
			idx = i
			break
		}
	}
	switch {
	case idx < 0:
		return c.plain, n == 0
	case idx == 0:
		// background
		return lipgloss.Style{}, false
	case idx == n-2:
		return c.start, true
	case idx == n-1:
		return c.end, true
	default:
		maxLevel := max(n-3, 1)
		return c.levels[(idx-1)*(len(c.levels)-1)/maxLevel], true
	}
}

func (c *Colorizer) Lines(lines []string) []string {
	out := make([]string, len(lines))
	var b strings.Builder
	for i, l := range lines {
		b.Reset()
		for _, sym := range l {
			if st, ok := c.style(sym); ok && sym != ' ' {
				b.WriteString(st.Render(string(sym)))
			} else {
				b.WriteRune(sym)
			}
		}
		out[i] = b.String()
	}
	return out
}
