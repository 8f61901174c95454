package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMul64(t *testing.T) {
	r, ok := Mul64(2000000000, 3)
	require.True(t, ok)
	require.EqualValues(t, 6000000000, r)

	_, ok = Mul64(math.MaxInt64, 2)
	require.False(t, ok)

	r, ok = Mul64(-4, 5)
	require.True(t, ok)
	require.EqualValues(t, -20, r)
}

func TestMulDivUint64(t *testing.T) {
	require.EqualValues(t, 400000000, MulDivUint64(2000000000, 300000000, 1500000000))

	// the intermediate product needs 128 bits
	require.EqualValues(t, uint64(math.MaxUint64)/2, MulDivUint64(math.MaxUint64, 50000000, 100000000))

	// 8/7 truncated
	require.EqualValues(t, 1, MulDivUint64(2, 4, 7))

	require.Panics(t, func() { MulDivUint64(math.MaxUint64, 2, 1) })
	require.Panics(t, func() { MulDivUint64(1, 1, 0) })
}

func TestAddSubUint64(t *testing.T) {
	sum, ok := AddUint64(math.MaxUint64-1, 1)
	require.True(t, ok)
	require.EqualValues(t, uint64(math.MaxUint64), sum)

	_, ok = AddUint64(math.MaxUint64, 1)
	require.False(t, ok)

	diff, ok := SubUint64(10, 4)
	require.True(t, ok)
	require.EqualValues(t, 6, diff)

	_, ok = SubUint64(4, 10)
	require.False(t, ok)
}
