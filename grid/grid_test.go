package grid

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func runeString(r rune) string { return string(r) }

func TestNew(t *testing.T) {
	g, err := New(4, 3, '.')
	require.NoError(t, err)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())
	require.Equal(t, []string{"....", "....", "...."}, g.Render(runeString))

	_, err = New(-1, 3, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)
	_, err = New(3, -1, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestEmpty(t *testing.T) {
	g, err := New(5, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, g.Width())
	require.Equal(t, 0, g.Height())
	require.Empty(t, g.Render(strconv.Itoa))
	require.Equal(t, "", g.Text(strconv.Itoa))

	g, err = FromRows[int](nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.Width())
	require.Equal(t, 0, g.Height())
}

func TestGetSet(t *testing.T) {
	g, err := New(3, 2, 0)
	require.NoError(t, err)

	require.NoError(t, g.Set(2, 1, 7))
	v, err := g.Get(2, 1)
	require.NoError(t, err)
	require.Equal(t, 7, v)
	require.Equal(t, []string{"000", "007"}, g.Render(strconv.Itoa))

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
		_, err := g.Get(p[0], p[1])
		require.ErrorIs(t, err, ErrOutOfBounds)
		require.ErrorIs(t, g.Set(p[0], p[1], 1), ErrOutOfBounds)
		require.ErrorIs(t, g.Update(p[0], p[1], func(v int) int { return v + 1 }), ErrOutOfBounds)
	}

	require.NoError(t, g.Update(0, 0, func(v int) int { return v + 5 }))
	v, err = g.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]rune{[]rune("abc"), []rune("def")})
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	v, err := g.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, 'e', v)

	_, err = FromRows([][]rune{[]rune("abc"), []rune("de")})
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestOverlay(t *testing.T) {
	sprite, err := FromRows([][]rune{[]rune("><>")})
	require.NoError(t, err)

	t.Run("inside", func(t *testing.T) {
		g, err := New(5, 3, ' ')
		require.NoError(t, err)
		require.Same(t, g, g.Overlay(sprite, 1, 1))
		require.Equal(t, []string{"     ", " ><> ", "     "}, g.Render(runeString))
	})

	t.Run("clipped right", func(t *testing.T) {
		g, err := New(5, 3, '.')
		require.NoError(t, err)
		g.Overlay(sprite, 3, 0)
		require.Equal(t, []string{"...><", ".....", "....."}, g.Render(runeString))
	})

	t.Run("clipped left", func(t *testing.T) {
		g, err := New(5, 3, '.')
		require.NoError(t, err)
		g.Overlay(sprite, -2, 2)
		require.Equal(t, []string{".....", ".....", ">...."}, g.Render(runeString))
	})

	t.Run("fully outside", func(t *testing.T) {
		g, err := New(5, 3, '.')
		require.NoError(t, err)
		g.Overlay(sprite, 0, 3).Overlay(sprite, 5, 0).Overlay(sprite, -3, 0)
		require.Equal(t, []string{".....", ".....", "....."}, g.Render(runeString))
	})

	t.Run("transparent", func(t *testing.T) {
		g, err := New(5, 1, '.')
		require.NoError(t, err)
		hole, err := FromRows([][]rune{[]rune("a b")})
		require.NoError(t, err)
		g.OverlayTransparent(hole, 1, 0, ' ')
		require.Equal(t, []string{".a.b."}, g.Render(runeString))
		g.Overlay(hole, 1, 0)
		require.Equal(t, []string{".a b."}, g.Render(runeString))
	})

	require.Equal(t, []string{"><>"}, sprite.Render(runeString))
}

func TestMirrorClone(t *testing.T) {
	g, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	c := g.Clone()
	g.Mirror()
	require.Equal(t, []string{"321", "654"}, g.Render(strconv.Itoa))
	require.Equal(t, []string{"123", "456"}, c.Render(strconv.Itoa))
}

func TestRenderSnapshot(t *testing.T) {
	g, err := New(2, 2, 0)
	require.NoError(t, err)
	lines := g.Render(strconv.Itoa)
	require.NoError(t, g.Set(0, 0, 9))
	require.Equal(t, []string{"00", "00"}, lines)
	require.Equal(t, "90\n00", g.Text(strconv.Itoa))
}
