// Package grid implements a fixed-size two-dimensional cell store.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
)

// Grid is a rectangular array of cells addressed by (x, y), where x is the
// column and y is the row. Its dimensions never change after construction.
type Grid[V comparable] struct {
	width  int
	height int
	cells  []V
}

func New[V comparable](width, height int, fill V) (*Grid[V], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	cells := make([]V, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[V]{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// FromRows builds a grid from pre-made rows. All rows must have the same length.
func FromRows[V comparable](rows [][]V) (*Grid[V], error) {
	if len(rows) == 0 {
		return &Grid[V]{}, nil
	}
	width := len(rows[0])
	cells := make([]V, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrInvalidDimension, i, len(row), width)
		}
		cells = append(cells, row...)
	}
	return &Grid[V]{
		width:  width,
		height: len(rows),
		cells:  cells,
	}, nil
}

func (g *Grid[V]) Width() int {
	if g.height == 0 {
		return 0
	}
	return g.width
}

func (g *Grid[V]) Height() int { return g.height }

func (g *Grid[V]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[V]) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, g.Width(), g.height)
	}
	return x + y*g.width, nil
}

func (g *Grid[V]) Get(x, y int) (V, error) {
	i, err := g.index(x, y)
	if err != nil {
		var zero V
		return zero, err
	}
	return g.cells[i], nil
}

func (g *Grid[V]) Set(x, y int, value V) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[i] = value
	return nil
}

// Update replaces the cell at (x, y) with fn applied to its current value.
func (g *Grid[V]) Update(x, y int, fn func(V) V) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[i] = fn(g.cells[i])
	return nil
}

// Overlay copies every cell of other into g, shifted by (xOff, yOff).
// Cells that land outside of g are dropped. Returns g.
func (g *Grid[V]) Overlay(other *Grid[V], xOff, yOff int) *Grid[V] {
	return g.overlay(other, xOff, yOff, func(V) bool { return false })
}

// OverlayTransparent is like Overlay but leaves g untouched wherever the
// source cell equals transparent.
func (g *Grid[V]) OverlayTransparent(other *Grid[V], xOff, yOff int, transparent V) *Grid[V] {
	return g.overlay(other, xOff, yOff, func(v V) bool { return v == transparent })
}

func (g *Grid[V]) overlay(other *Grid[V], xOff, yOff int, skip func(V) bool) *Grid[V] {
	for oy := range other.height {
		for ox := range other.width {
			val := other.cells[ox+oy*other.width]
			if skip(val) {
				continue
			}
			x, y := ox+xOff, oy+yOff
			if g.InBounds(x, y) {
				g.cells[x+y*g.width] = val
			}
		}
	}
	return g
}

// Mirror flips the grid horizontally in place. Returns g.
func (g *Grid[V]) Mirror() *Grid[V] {
	for y := range g.height {
		row := g.cells[y*g.width : (y+1)*g.width]
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return g
}

func (g *Grid[V]) Clone() *Grid[V] {
	cells := make([]V, len(g.cells))
	copy(cells, g.cells)
	return &Grid[V]{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Render returns one line per row, each being the concatenation of format
// applied to the row's cells from left to right. The result is a snapshot:
// later changes to g do not affect it.
func (g *Grid[V]) Render(format func(V) string) []string {
	lines := make([]string, g.height)
	var b strings.Builder
	for y := range g.height {
		b.Reset()
		for _, v := range g.cells[y*g.width : (y+1)*g.width] {
			b.WriteString(format(v))
		}
		lines[y] = b.String()
	}
	return lines
}

// Text is Render joined with newlines.
func (g *Grid[V]) Text(format func(V) string) string {
	return strings.Join(g.Render(format), "\n")
}
