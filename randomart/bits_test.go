package randomart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBits(t *testing.T) {
	require.Equal(t, uint(1), BitSetInPos(4, 2))
	require.Equal(t, uint(0), BitSetInPos(4, 0))
	require.Equal(t, uint(0), BitSetInPos(4, 1))
	require.Equal(t, uint(1), BitSetInPos(0x80, 7))

	require.Equal(t, uint(5), BitsSetInRange(52, 2, 5))
	require.Equal(t, uint(15), BitsSetInRange(0xff, 1, 5))
	require.Equal(t, uint(7), BitsSetInRange(0xff, 5, 8))
	require.Equal(t, uint(0), BitsSetInRange(0xff, 3, 3))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, clamp(-1, 0, 16))
	require.Equal(t, 16, clamp(17, 0, 16))
	require.Equal(t, 8, clamp(8, 0, 16))
}
