package bitmanip

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// u128Bits is the bit width of U128.
const u128Bits = 128

// U128 is a 128-bit unsigned integer that exposes its bits through the BitManip methods.
//
// Go has no predeclared 128-bit type, so U128 shares its layout with uint128.Uint128 and can be converted from
// and to it directly.
type U128 uint128.Uint128

var _ BitManip[U128] = U128{}

// NewU128 creates a U128 from its low and high 64-bit halves.
func NewU128(lo, hi uint64) U128 {
	return U128(uint128.New(lo, hi))
}

// Uint128 returns the value as a uint128.Uint128.
func (u U128) Uint128() uint128.Uint128 {
	return uint128.Uint128(u)
}

// Len returns the bit width of U128, which is 128.
func (u U128) Len() uint {
	return u128Bits
}

// Get returns the bit at the given position.
func (u U128) Get(pos uint) (bool, error) {
	if err := checkPos(pos, u128Bits); err != nil {
		return false, err
	}

	return !u.Uint128().And(bit128(pos)).IsZero(), nil
}

// Set returns the value with the bit at the given position forced to flag.
func (u U128) Set(pos uint, flag bool) (U128, error) {
	if err := checkPos(pos, u128Bits); err != nil {
		return u, err
	}

	fill := uint128.Zero
	if flag {
		fill = uint128.Max
	}
	value := u.Uint128()

	return U128(value.Xor(fill.Xor(value).And(bit128(pos)))), nil
}

// On returns the value with the bit at the given position set.
func (u U128) On(pos uint) (U128, error) {
	return u.Set(pos, true)
}

// Off returns the value with the bit at the given position cleared.
func (u U128) Off(pos uint) (U128, error) {
	return u.Set(pos, false)
}

// Toggle returns the value with the bit at the given position flipped.
func (u U128) Toggle(pos uint) (U128, error) {
	if err := checkPos(pos, u128Bits); err != nil {
		return u, err
	}

	return U128(u.Uint128().Xor(bit128(pos))), nil
}

// Bits returns the 128 bits of the value, least significant bit first.
func (u U128) Bits() []bool {
	result := make([]bool, u128Bits)
	for i := uint(0); i < 64; i++ {
		result[i] = u.Lo&(1<<i) != 0
		result[i+64] = u.Hi&(1<<i) != 0
	}

	return result
}

// Ones returns the ascending positions of all set bits.
func (u U128) Ones() []uint {
	positions := make([]uint, 0, u.CountOnes())
	for remaining := u.Uint128(); !remaining.IsZero(); {
		pos := uint(remaining.TrailingZeros())
		positions = append(positions, pos)
		remaining = remaining.Xor(bit128(pos))
	}

	return positions
}

// Zeroes returns the ascending positions of all cleared bits.
func (u U128) Zeroes() []uint {
	return u.not().Ones()
}

// FirstOne returns the position of the least significant set bit, if any.
func (u U128) FirstOne() (uint, bool) {
	if u.Uint128().IsZero() {
		return 0, false
	}

	return uint(u.Uint128().TrailingZeros()), true
}

// FirstZero returns the position of the least significant cleared bit, if any.
func (u U128) FirstZero() (uint, bool) {
	return u.not().FirstOne()
}

// CountOnes returns the number of set bits.
func (u U128) CountOnes() uint {
	return uint(u.Uint128().OnesCount())
}

// CountZeroes returns the number of cleared bits.
func (u U128) CountZeroes() uint {
	return u128Bits - u.CountOnes()
}

// Range returns the bits in [start, end) shifted down to position 0. It panics if start >= end or end > 128.
func (u U128) Range(start, end uint) U128 {
	assertRange(start, end, u128Bits)

	return U128(u.Uint128().Rsh(start).And(lowMask128(end - start)))
}

// SetRange returns the value with the bits in [start, end) replaced by the low bits of insert.
// It panics if start >= end or end > 128.
func (u U128) SetRange(start, end uint, insert U128) U128 {
	assertRange(start, end, u128Bits)

	mask := lowMask128(end - start).Lsh(start)
	cleared := u.Uint128().And(mask.Xor(uint128.Max))

	return U128(cleared.Or(insert.Uint128().Lsh(start).And(mask)))
}

// SignedLeftShift shifts left by a positive and right by a negative amount. Shifting by 128 or more yields 0.
func (u U128) SignedLeftShift(amount int) U128 {
	if amount < 0 {
		return u.rsh(magnitude(amount))
	}

	return u.lsh(uint64(amount))
}

// SignedRightShift shifts right by a positive and left by a negative amount. Shifting by 128 or more yields 0.
func (u U128) SignedRightShift(amount int) U128 {
	if amount < 0 {
		return u.lsh(magnitude(amount))
	}

	return u.rsh(uint64(amount))
}

// Reverse returns the value with the order of all 128 bits reversed.
func (u U128) Reverse() U128 {
	return U128{Lo: bits.Reverse64(u.Hi), Hi: bits.Reverse64(u.Lo)}
}

func (u U128) not() U128 {
	return U128{Lo: ^u.Lo, Hi: ^u.Hi}
}

func (u U128) lsh(n uint64) U128 {
	if n >= u128Bits {
		return U128{}
	}

	return U128(u.Uint128().Lsh(uint(n)))
}

func (u U128) rsh(n uint64) U128 {
	if n >= u128Bits {
		return U128{}
	}

	return U128(u.Uint128().Rsh(uint(n)))
}

// bit128 returns a value with only the bit at pos set, for pos < 128.
func bit128(pos uint) uint128.Uint128 {
	return uint128.From64(1).Lsh(pos)
}

// lowMask128 returns a value with the n lowest bits set, for 0 < n <= 128.
func lowMask128(n uint) uint128.Uint128 {
	return uint128.Max.Rsh(u128Bits - n)
}
