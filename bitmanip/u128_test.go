package bitmanip_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/iotaledger/dotbits"
	"github.com/iotaledger/dotbits/bitmanip"
)

func randomU128(r *rand.Rand) bitmanip.U128 {
	return bitmanip.NewU128(r.Uint64(), r.Uint64())
}

func TestU128GetSet(t *testing.T) {
	value, err := bitmanip.U128{}.On(100)
	require.NoError(t, err)
	require.Equal(t, bitmanip.NewU128(0, 1<<36), value)

	set, err := value.Get(100)
	require.NoError(t, err)
	require.True(t, set)

	set, err = value.Get(36)
	require.NoError(t, err)
	require.False(t, set)

	value, err = value.Off(100)
	require.NoError(t, err)
	require.Equal(t, bitmanip.U128{}, value)

	value, err = value.Toggle(127)
	require.NoError(t, err)
	require.Equal(t, bitmanip.NewU128(0, 1<<63), value)

	_, err = value.Get(128)
	require.ErrorIs(t, err, dotbits.ErrPosOutOfBounds)

	unchanged, err := value.Set(200, true)
	require.ErrorIs(t, err, dotbits.ErrPosOutOfBounds)
	require.Equal(t, value, unchanged)

	_, err = value.Toggle(128)
	require.ErrorIs(t, err, dotbits.ErrPosOutOfBounds)

	//nolint:gosec // deterministic test data
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		original := randomU128(r)
		pos := uint(r.Intn(128))
		flag := r.Intn(2) == 1

		result, err := original.Set(pos, flag)
		require.NoError(t, err)

		got, err := result.Get(pos)
		require.NoError(t, err)
		require.Equal(t, flag, got)

		for _, other := range []uint{(pos + 1) % 128, (pos + 64) % 128, (pos + 127) % 128} {
			before, _ := original.Get(other)
			after, _ := result.Get(other)
			require.Equal(t, before, after)
		}
	}
}

func TestU128Aggregates(t *testing.T) {
	value := bitmanip.NewU128(0b10110100, 1<<63)

	require.Equal(t, []uint{2, 4, 5, 7, 127}, value.Ones())
	require.Len(t, value.Zeroes(), 123)
	require.EqualValues(t, 5, value.CountOnes())
	require.EqualValues(t, 123, value.CountZeroes())

	bits := value.Bits()
	require.Len(t, bits, 128)
	require.True(t, bits[127])
	require.True(t, bits[2])
	require.False(t, bits[64])

	pos, found := value.FirstOne()
	require.True(t, found)
	require.EqualValues(t, 2, pos)

	pos, found = bitmanip.NewU128(math.MaxUint64, 0b0111).FirstZero()
	require.True(t, found)
	require.EqualValues(t, 67, pos)

	_, found = bitmanip.U128{}.FirstOne()
	require.False(t, found)

	_, found = bitmanip.U128(uint128.Max).FirstZero()
	require.False(t, found)
	require.Empty(t, bitmanip.U128(uint128.Max).Zeroes())
	require.Empty(t, bitmanip.U128{}.Ones())
}

func TestU128Range(t *testing.T) {
	value := bitmanip.NewU128(0xF000_0000_0000_0000, 0x0000_0000_0000_000F)

	require.Equal(t, bitmanip.NewU128(0xFF, 0), value.Range(60, 68))
	require.Equal(t, value, value.Range(0, 128))

	replaced := value.SetRange(60, 68, bitmanip.NewU128(0xFFF0_0A5, 0))
	require.Equal(t, bitmanip.NewU128(0x5000_0000_0000_0000, 0x0000_0000_0000_000A), replaced)

	//nolint:gosec // deterministic test data
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		original := randomU128(r)
		start := uint(r.Intn(128))
		end := start + 1 + uint(r.Intn(int(128-start)))

		require.Equal(t, original, original.SetRange(start, end, original.Range(start, end)))
	}

	assertPanicsWithOutOfBounds(t, func() { value.Range(64, 64) })
	assertPanicsWithOutOfBounds(t, func() { value.Range(0, 129) })
	assertPanicsWithOutOfBounds(t, func() { value.SetRange(10, 2, value) })
}

func TestU128ShiftsAndReverse(t *testing.T) {
	one := bitmanip.NewU128(1, 0)

	require.Equal(t, bitmanip.NewU128(0, 1), one.SignedLeftShift(64))
	require.Equal(t, one, bitmanip.NewU128(0, 1).SignedLeftShift(-64))
	require.Equal(t, one, bitmanip.NewU128(0, 1).SignedRightShift(64))
	require.Equal(t, bitmanip.NewU128(0, 1<<63), one.SignedRightShift(-127))
	require.Equal(t, bitmanip.U128{}, one.SignedLeftShift(128))
	require.Equal(t, bitmanip.U128{}, one.SignedRightShift(math.MinInt))

	require.Equal(t, bitmanip.NewU128(0, 1<<63), one.Reverse())
	require.Equal(t, bitmanip.NewU128(0, 0xF000_0000_0000_0000), bitmanip.NewU128(0b1111, 0).Reverse())

	//nolint:gosec // deterministic test data
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 500; i++ {
		original := randomU128(r)
		require.Equal(t, original, original.Reverse().Reverse())

		k := r.Intn(140)
		require.Equal(t, original.SignedRightShift(k), original.SignedLeftShift(-k))
	}
}

func TestU128Conversion(t *testing.T) {
	value := bitmanip.NewU128(1, 2)
	require.Equal(t, uint128.New(1, 2), value.Uint128())
	require.Equal(t, value, bitmanip.U128(uint128.New(1, 2)))
}
