package randomart

import (
	"fmt"

	"github.com/signatory-io/hashime/grid"
)

const fishTankSprites = 2

// DefaultSprites returns a fresh copy of the default fish tank catalog.
func DefaultSprites() []*grid.Grid[rune] {
	return []*grid.Grid[rune]{
		NewSprite("><>"),
		NewSprite("<><"),
	}
}

// NewSprite returns a single-row sprite.
func NewSprite(s string) *grid.Grid[rune] {
	g, err := grid.FromRows([][]rune{[]rune(s)})
	if err != nil {
		panic(err)
	}
	return g
}

// FishTank stamps one sprite per input byte. Bit 0 of the byte selects the
// sprite, bits 1-4 the column and bits 5-7 the row.
type FishTank struct {
	width   int
	height  int
	sprites []*grid.Grid[rune]
}

func NewFishTank(width, height int, sprites []*grid.Grid[rune]) (*FishTank, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %w: %dx%d", ErrInvalidConfiguration, grid.ErrInvalidDimension, width, height)
	}
	if sprites == nil {
		sprites = DefaultSprites()
	}
	if len(sprites) != fishTankSprites {
		return nil, fmt.Errorf("%w: fish tank needs exactly %d sprites, got %d", ErrInvalidConfiguration, fishTankSprites, len(sprites))
	}
	catalog := make([]*grid.Grid[rune], len(sprites))
	for i, s := range sprites {
		if s == nil || s.Width() == 0 {
			return nil, fmt.Errorf("%w: sprite %d is empty", ErrInvalidConfiguration, i)
		}
		catalog[i] = s.Clone()
	}
	return &FishTank{
		width:   width,
		height:  height,
		sprites: catalog,
	}, nil
}

func (*FishTank) Name() string { return FishTankName }

func (f *FishTank) Width() int  { return f.width }
func (f *FishTank) Height() int { return f.height }

// Fill returns the tank for digest. Later sprites overwrite earlier ones.
func (f *FishTank) Fill(digest []byte) (*grid.Grid[rune], error) {
	tank, err := grid.New(f.width, f.height, ' ')
	if err != nil {
		return nil, err
	}
	for _, input := range digest {
		b := uint(input)
		idx := BitSetInPos(b, 0)
		if idx >= uint(len(f.sprites)) {
			return nil, fmt.Errorf("%w: sprite index %d", ErrInvalidConfiguration, idx)
		}
		x := scale(BitsSetInRange(b, 1, 5), 15, f.width)
		y := scale(BitsSetInRange(b, 5, 8), 7, f.height)
		tank.Overlay(f.sprites[idx], x, y)
	}
	return tank, nil
}

// scale maps v from [0, maxV] onto [0, size]. It truncates the float product,
// so 11 of 15 on a 75 wide tank is column 54, not 11*75/15.
func scale(v, maxV uint, size int) int {
	return int(float64(v) / float64(maxV) * float64(size))
}

func (f *FishTank) Art(digest []byte) ([]string, error) {
	tank, err := f.Fill(digest)
	if err != nil {
		return nil, err
	}
	return tank.Render(func(r rune) string { return string(r) }), nil
}
