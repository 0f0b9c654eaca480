// Package randomart turns digests into small text pictures that are easy to
// compare by eye.
package randomart

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/signatory-io/hashime/grid"
)

const (
	DrunkenBishopName = "drunken_bishop"
	FishTankName      = "fish_tank"
)

type Algorithm interface {
	Name() string
	// Art renders digest as equally wide lines.
	Art(digest []byte) ([]string, error)
}

type Options struct {
	Width   int
	Height  int
	Palette string
	// Sprites are single-row fish tank sprites. Empty means the default
	// catalog, a single sprite is paired with its mirror image.
	Sprites []string
}

func (o *Options) Default() {
	o.Width = DefaultWidth
	o.Height = DefaultHeight
	o.Palette = DefaultPalette
	o.Sprites = nil
}

type newAlgorithmFunc func(opts *Options) (Algorithm, error)

var algorithms = map[string]newAlgorithmFunc{
	DrunkenBishopName: func(opts *Options) (Algorithm, error) {
		return NewDrunkenBishop(opts.Width, opts.Height, opts.Palette)
	},
	FishTankName: func(opts *Options) (Algorithm, error) {
		var sprites []*grid.Grid[rune]
		for _, s := range opts.Sprites {
			sprites = append(sprites, NewSprite(s))
		}
		if len(sprites) == 1 {
			sprites = append(sprites, sprites[0].Clone().Mirror())
		}
		return NewFishTank(opts.Width, opts.Height, sprites)
	},
}

// New returns the named algorithm configured with opts. A nil opts means defaults.
func New(name string, opts *Options) (Algorithm, error) {
	newFunc, ok := algorithms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %s", name)
	}
	if opts == nil {
		opts = new(Options)
		opts.Default()
	}
	return newFunc(opts)
}

func Names() []string {
	return slices.Sorted(maps.Keys(algorithms))
}
