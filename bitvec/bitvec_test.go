package bitvec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dotbits"
	"github.com/iotaledger/dotbits/bitvec"
)

func TestOnesZeroes(t *testing.T) {
	b := bitvec.BitVec{false, false, true, false, true, true, false, true}

	require.Equal(t, []uint{2, 4, 5, 7}, b.Ones())
	require.Equal(t, []uint{0, 1, 3, 6}, b.Zeroes())

	require.Empty(t, bitvec.BitVec{}.Ones())
	require.Empty(t, bitvec.BitVec{}.Zeroes())
	require.Empty(t, bitvec.New(5).Ones())
	require.Equal(t, []uint{0, 1, 2, 3, 4}, bitvec.New(5).Zeroes())
}

func TestGet(t *testing.T) {
	b := bitvec.BitVec{true, false}

	set, err := b.Get(0)
	require.NoError(t, err)
	require.True(t, set)

	set, err = b.Get(1)
	require.NoError(t, err)
	require.False(t, set)

	_, err = b.Get(2)
	require.ErrorIs(t, err, dotbits.ErrPosOutOfBounds)
}

func TestSet(t *testing.T) {
	b := bitvec.New(4)

	require.NoError(t, b.Set(1, true))
	require.Equal(t, bitvec.BitVec{false, true, false, false}, b)

	require.NoError(t, b.SetOn(3))
	require.NoError(t, b.SetOff(1))
	require.Equal(t, bitvec.BitVec{false, false, false, true}, b)

	require.NoError(t, b.Toggle(0))
	require.NoError(t, b.Toggle(3))
	require.Equal(t, bitvec.BitVec{true, false, false, false}, b)
}

func TestSetOutOfBoundsDoesNotGrow(t *testing.T) {
	b := bitvec.BitVec{true}

	require.ErrorIs(t, b.Set(1, true), dotbits.ErrPosOutOfBounds)
	require.ErrorIs(t, b.SetOn(5), dotbits.ErrPosOutOfBounds)
	require.ErrorIs(t, b.SetOff(5), dotbits.ErrPosOutOfBounds)
	require.ErrorIs(t, b.Toggle(1), dotbits.ErrPosOutOfBounds)
	require.Equal(t, bitvec.BitVec{true}, b)

	var empty bitvec.BitVec
	require.ErrorIs(t, empty.Set(0, false), dotbits.ErrPosOutOfBounds)
	require.Empty(t, empty)
}

func TestExtend(t *testing.T) {
	b := bitvec.BitVec{true}

	b.Extend(4)
	require.Equal(t, bitvec.BitVec{true, false, false, false}, b)
	require.NoError(t, b.SetOn(3))

	// never shrinks
	b.Extend(2)
	require.Equal(t, bitvec.BitVec{true, false, false, true}, b)

	// lengths that cannot be allocated must not be mistaken for shrinking
	require.Panics(t, func() { b.Extend(math.MaxUint) })
	require.Panics(t, func() { b.Extend(uint(math.MaxInt) + 1) })
	require.Equal(t, bitvec.BitVec{true, false, false, true}, b)
}

func TestTrim(t *testing.T) {
	for _, tt := range []struct {
		name     string
		input    bitvec.BitVec
		expected bitvec.BitVec
	}{
		{"trailing falses", bitvec.BitVec{true, false, true, false, false}, bitvec.BitVec{true, false, true}},
		{"interior falses are kept", bitvec.BitVec{false, false, true}, bitvec.BitVec{false, false, true}},
		{"all false", bitvec.BitVec{false, false, false}, bitvec.BitVec{}},
		{"empty", bitvec.BitVec{}, bitvec.BitVec{}},
		{"single true", bitvec.BitVec{true}, bitvec.BitVec{true}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.input
			b.Trim()
			require.Equal(t, tt.expected, b)
		})
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "10110100", bitvec.BitVec{false, false, true, false, true, true, false, true}.String())
	require.Equal(t, "", bitvec.BitVec{}.String())

	b, err := bitvec.Parse("1011_0100")
	require.NoError(t, err)
	require.Equal(t, bitvec.BitVec{false, false, true, false, true, true, false, true}, b)
	require.Equal(t, "10110100", b.String())

	_, err = bitvec.Parse("10a1")
	require.ErrorIs(t, err, bitvec.ErrInvalidDigit)
}
