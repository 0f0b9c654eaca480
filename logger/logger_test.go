package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	for _, l := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug} {
		text, err := l.MarshalText()
		require.NoError(t, err)
		var out Level
		require.NoError(t, out.UnmarshalText(text))
		require.Equal(t, l, out)
	}

	l, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, LevelDebug, l)

	_, err = ParseLevel("trace")
	require.EqualError(t, err, "unknown log level: trace")

	_, err = Level(42).MarshalText()
	require.Error(t, err)
	require.Equal(t, "Level(42)", Level(42).String())
}

func TestNop(t *testing.T) {
	l := Nop.With("a", 1).WithFields(map[string]any{"b": 2})
	require.Equal(t, Nop, l)
	l.Debugf("discarded %d", 1)
}
