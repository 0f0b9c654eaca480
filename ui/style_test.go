package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/signatory-io/hashime/randomart"
	"github.com/stretchr/testify/require"
)

var art = []string{
	"  o  .  S o.+    ",
	".. E+ ..ooo      ",
}

func TestColorizer(t *testing.T) {
	var buf bytes.Buffer
	c := NewColorizer(NewRenderer(&buf, true), randomart.DefaultPalette)
	out := c.Lines(art)
	require.Len(t, out, len(art))
	for i, l := range out {
		require.Contains(t, l, "\x1b[")
		require.Equal(t, lipgloss.Width(art[i]), lipgloss.Width(l))
	}

	// the frame measures colored lines by their display width
	framed := strings.Split(randomart.DefaultFrame().Apply(out, "T", ""), "\n")
	require.Equal(t, "+-------[T]-------+", framed[0])
	require.Equal(t, "+-----------------+", framed[len(framed)-1])
}

func TestColorizerNoColor(t *testing.T) {
	var buf bytes.Buffer
	c := NewColorizer(NewRenderer(&buf, false), randomart.DefaultPalette)
	require.Equal(t, art, c.Lines(art))
}

func TestColorizerFish(t *testing.T) {
	var buf bytes.Buffer
	c := NewColorizer(NewRenderer(&buf, true), "")
	out := c.Lines([]string{" ><> "})
	require.Equal(t, 5, lipgloss.Width(out[0]))
	require.True(t, strings.HasPrefix(out[0], " \x1b["))
}

func TestUseColor(t *testing.T) {
	require.True(t, UseColor("always", nil))
	require.False(t, UseColor("never", os.Stdout))
	require.False(t, UseColor("auto", nil))

	f, err := os.CreateTemp(t.TempDir(), "")
	require.NoError(t, err)
	defer f.Close()
	require.False(t, IsTerminal(f))
	require.False(t, UseColor("auto", f))
}
