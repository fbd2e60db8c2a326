package hexconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfbyte(t *testing.T) {
	require.Equal(t, byte(0x0), Halfbyte['0'])
	require.Equal(t, byte(0x9), Halfbyte['9'])
	require.Equal(t, byte(0xa), Halfbyte['a'])
	require.Equal(t, byte(0xf), Halfbyte['f'])
	require.Equal(t, byte(0xA), Halfbyte['A'])
	require.Equal(t, byte(0xF), Halfbyte['F'])

	for _, char := range []byte{'g', 'G', 'x', ' ', '\r', '\n', 0, 0xFF} {
		require.Equal(t, byte(0xFF), Halfbyte[char])
	}
}
