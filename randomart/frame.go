package randomart

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const frameSymbols = 10

// Frame holds the symbols used to draw a border around rendered art.
type Frame struct {
	Top          string
	Right        string
	Bottom       string
	Left         string
	TopLeft      string
	TopRight     string
	BottomRight  string
	BottomLeft   string
	LeftBracket  string
	RightBracket string
}

const DefaultFrameSpec = "-,|,-,|,+,+,+,+,[,]"

func DefaultFrame() *Frame {
	f, err := ParseFrame(DefaultFrameSpec)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseFrame parses comma separated frame symbols in order of top, right,
// bottom and left lines, then corners clockwise from the top left, then the
// caption brackets.
func ParseFrame(spec string) (*Frame, error) {
	v := strings.Split(spec, ",")
	if len(v) != frameSymbols {
		return nil, fmt.Errorf("number of frame characters is not %d: %d", frameSymbols, len(v))
	}
	return &Frame{
		Top:          v[0],
		Right:        v[1],
		Bottom:       v[2],
		Left:         v[3],
		TopLeft:      v[4],
		TopRight:     v[5],
		BottomRight:  v[6],
		BottomLeft:   v[7],
		LeftBracket:  v[8],
		RightBracket: v[9],
	}, nil
}

func (f *Frame) String() string {
	return strings.Join([]string{
		f.Top, f.Right, f.Bottom, f.Left,
		f.TopLeft, f.TopRight, f.BottomRight, f.BottomLeft,
		f.LeftBracket, f.RightBracket,
	}, ",")
}

// Apply draws the frame around lines. The frame width is the display width
// of the first line. Empty captions are omitted.
func (f *Frame) Apply(lines []string, top, bottom string) string {
	var width int
	if len(lines) != 0 {
		width = lipgloss.Width(lines[0])
	}

	var out bytes.Buffer
	out.WriteString(f.TopLeft)
	out.WriteString(center(f.caption(top, width), width, f.Top))
	out.WriteString(f.TopRight)
	for _, l := range lines {
		out.WriteRune('\n')
		out.WriteString(f.Left)
		out.WriteString(l)
		out.WriteString(f.Right)
	}
	out.WriteRune('\n')
	out.WriteString(f.BottomLeft)
	out.WriteString(center(f.caption(bottom, width), width, f.Bottom))
	out.WriteString(f.BottomRight)
	return out.String()
}

func (f *Frame) caption(text string, width int) string {
	if text == "" {
		return ""
	}
	brWidth := lipgloss.Width(f.LeftBracket) + lipgloss.Width(f.RightBracket)
	if lipgloss.Width(text)+brWidth > width {
		text = truncate(text, width-brWidth-3) + "..."
	}
	return f.LeftBracket + text + f.RightBracket
}

// truncate returns the longest prefix of s not wider than width cells.
func truncate(s string, width int) string {
	var w int
	for i, r := range s {
		w += lipgloss.Width(string(r))
		if w > width {
			return s[:i]
		}
	}
	return s
}

// center pads s up to width with fill. When both the margin and width are
// odd the extra fill symbol goes on the left.
func center(s string, width int, fill string) string {
	marg := width - lipgloss.Width(s)
	if marg <= 0 {
		return s
	}
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, marg-left)
}
