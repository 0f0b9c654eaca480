package randomart

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	require.Equal(t, []string{DrunkenBishopName, FishTankName}, Names())

	a, err := New("drunken_bishop", nil)
	require.NoError(t, err)
	require.Equal(t, DrunkenBishopName, a.Name())
	lines, err := a.Art(keyDigest(t, knownVectors[1].key))
	require.NoError(t, err)
	require.Equal(t, knownVectors[1].art, strings.Join(lines, "\n"))

	a, err = New("FISH_TANK", &Options{Width: 6, Height: 2, Sprites: []string{"ab", "cd"}})
	require.NoError(t, err)
	require.Equal(t, FishTankName, a.Name())
	lines, err = a.Art([]byte{0x01})
	require.NoError(t, err)
	require.Equal(t, []string{"cd    ", "      "}, lines)

	_, err = New("drunken_bishop", &Options{Width: 17, Height: 9, Palette: "ab"})
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = New("fish_tank", &Options{Width: 17, Height: 9, Sprites: []string{"a", "b", "c"}})
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = New("mandelbrot", nil)
	require.EqualError(t, err, "unknown algorithm mandelbrot")
}

func TestMirroredSprite(t *testing.T) {
	a, err := New(FishTankName, &Options{Width: 8, Height: 1, Sprites: []string{"<°)))"}})
	require.NoError(t, err)
	// 0x00: sprite 0 at the origin, 0x15: mirrored sprite at column 5
	lines, err := a.Art([]byte{0x00, 0x15})
	require.NoError(t, err)
	require.Equal(t, []string{"<°))))))"}, lines)
	lines, err = a.Art([]byte{0x01})
	require.NoError(t, err)
	require.Equal(t, []string{")))°<   "}, lines)
}

func TestConcurrentUse(t *testing.T) {
	var opts Options
	opts.Default()
	algs := make([]Algorithm, 0, 2)
	for _, name := range Names() {
		a, err := New(name, &opts)
		require.NoError(t, err)
		algs = append(algs, a)
	}

	digest := keyDigest(t, knownVectors[0].key)
	want := make([][]string, len(algs))
	for i, a := range algs {
		var err error
		want[i], err = a.Art(digest)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = algs[i%len(algs)].Art(digest)
		}()
	}
	wg.Wait()
	for i, r := range results {
		require.Equal(t, want[i%len(algs)], r)
	}
}
