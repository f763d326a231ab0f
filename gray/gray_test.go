package gray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmap/gray"
)

func TestCode_Known(t *testing.T) {
	cases := []struct {
		k    int
		want []gray.Label
	}{
		{0, []gray.Label{""}},
		{1, []gray.Label{"0", "1"}},
		{2, []gray.Label{"00", "01", "11", "10"}},
		{3, []gray.Label{"000", "001", "011", "010", "110", "111", "101", "100"}},
	}
	for _, tc := range cases {
		got, err := gray.Code(tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Code(%d)", tc.k)
	}
}

// TestCode_Adjacency checks the cyclic one-bit property and uniqueness
// for every width a K-map axis can use, and a few wider ones.
func TestCode_Adjacency(t *testing.T) {
	for k := 0; k <= 6; k++ {
		codes, err := gray.Code(k)
		require.NoError(t, err)
		require.Len(t, codes, 1<<k)

		seen := make(map[gray.Label]bool, len(codes))
		for _, c := range codes {
			assert.Len(t, string(c), k)
			assert.False(t, seen[c], "duplicate label %q in Code(%d)", c, k)
			seen[c] = true
		}
		if k == 0 {
			continue
		}
		for i := range codes {
			next := codes[(i+1)%len(codes)]
			d, err := gray.Hamming(codes[i], next)
			require.NoError(t, err)
			assert.Equal(t, 1, d, "Code(%d): %q -> %q", k, codes[i], next)
		}
	}
}

func TestCode_Errors(t *testing.T) {
	_, err := gray.Code(-1)
	assert.ErrorIs(t, err, gray.ErrNegativeWidth)

	_, err = gray.Code(gray.MaxWidth + 1)
	assert.ErrorIs(t, err, gray.ErrWidthTooLarge)

	assert.Panics(t, func() { gray.MustCode(-3) })
}

func TestHamming_LengthMismatch(t *testing.T) {
	_, err := gray.Hamming("01", "011")
	assert.ErrorIs(t, err, gray.ErrLengthMismatch)
}

func TestLabel_Value(t *testing.T) {
	assert.Equal(t, 0, gray.Label("").Value())
	assert.Equal(t, 2, gray.Label("10").Value())
	assert.Equal(t, 13, gray.Label("11").Concat("01").Value())
	assert.Equal(t, 4, gray.Label("0100").Width())
}
