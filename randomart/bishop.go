package randomart

import (
	"errors"
	"fmt"

	"github.com/signatory-io/hashime/grid"
)

const (
	baseSz = 8

	DefaultWidth   = baseSz*2 + 1
	DefaultHeight  = baseSz + 1
	DefaultPalette = " .o+=*BOX@%&#/^SE"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// DrunkenBishop is the random art algorithm used by ssh-keygen. The two last
// palette symbols mark the start and the end of the walk, the rest are
// visitation levels.
type DrunkenBishop struct {
	width   int
	height  int
	palette []rune
}

func NewDrunkenBishop(width, height int, palette string) (*DrunkenBishop, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %w: %dx%d", ErrInvalidConfiguration, grid.ErrInvalidDimension, width, height)
	}
	p := []rune(palette)
	if len(p) < 3 {
		return nil, fmt.Errorf("%w: palette %q must contain at least 3 symbols", ErrInvalidConfiguration, palette)
	}
	return &DrunkenBishop{
		width:   width,
		height:  height,
		palette: p,
	}, nil
}

func (*DrunkenBishop) Name() string { return DrunkenBishopName }

func (d *DrunkenBishop) Width() int      { return d.width }
func (d *DrunkenBishop) Height() int     { return d.height }
func (d *DrunkenBishop) Palette() string { return string(d.palette) }

// MaxLevel is the value at which visitation counts saturate.
func (d *DrunkenBishop) MaxLevel() int { return len(d.palette) - 3 }

func (d *DrunkenBishop) StartSymbol() int { return len(d.palette) - 2 }
func (d *DrunkenBishop) EndSymbol() int   { return len(d.palette) - 1 }

func (d *DrunkenBishop) NewWalker() *Walker {
	field, err := grid.New(d.width, d.height, 0)
	if err != nil {
		panic(err)
	}
	return &Walker{
		bishop: d,
		field:  field,
		x:      d.width / 2,
		y:      d.height / 2,
	}
}

// Walk returns the finished field for digest, with start and end markers set.
func (d *DrunkenBishop) Walk(digest []byte) *grid.Grid[int] {
	w := d.NewWalker()
	w.Write(digest)
	return w.Grid()
}

// Symbol maps a field value to its palette symbol.
func (d *DrunkenBishop) Symbol(v int) string {
	return string(d.palette[clamp(v, 0, len(d.palette)-1)])
}

func (d *DrunkenBishop) Art(digest []byte) ([]string, error) {
	return d.Walk(digest).Render(d.Symbol), nil
}

// Walker accumulates the bishop's walk over a stream of input bytes.
// It is not safe for concurrent use.
type Walker struct {
	bishop *DrunkenBishop
	field  *grid.Grid[int]
	x, y   int
}

// Write feeds p into the walk. It never fails.
func (w *Walker) Write(p []byte) (int, error) {
	maxLevel := w.bishop.MaxLevel()
	inc := func(v int) int { return clamp(v+1, 0, maxLevel) }

	for _, input := range p {
		b := uint(input)
		for i := uint(0); i < 8; i += 2 {
			// bit*2-1 maps {0, 1} to {-1, +1}
			w.x = clamp(w.x+int(BitSetInPos(b, i))*2-1, 0, w.bishop.width-1)
			w.y = clamp(w.y+int(BitSetInPos(b, i+1))*2-1, 0, w.bishop.height-1)
			if err := w.field.Update(w.x, w.y, inc); err != nil {
				panic(err)
			}
		}
	}
	return len(p), nil
}

func (w *Walker) Position() (x, y int) { return w.x, w.y }

// Grid returns a copy of the field with the start and end markers applied.
// The end marker wins if both fall on the same cell.
func (w *Walker) Grid() *grid.Grid[int] {
	g := w.field.Clone()
	if err := g.Set(w.bishop.width/2, w.bishop.height/2, w.bishop.StartSymbol()); err != nil {
		panic(err)
	}
	if err := g.Set(w.x, w.y, w.bishop.EndSymbol()); err != nil {
		panic(err)
	}
	return g
}
