package bitmanip

import (
	"math/bits"

	"github.com/iotaledger/dotbits"
	"github.com/iotaledger/dotbits/constraints"
	"github.com/iotaledger/dotbits/ierrors"
)

// Len returns the bit width of T.
func Len[T constraints.Unsigned]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// Get returns the bit at the given position.
func Get[T constraints.Unsigned](value T, pos uint) (bool, error) {
	if err := checkPos(pos, Len[T]()); err != nil {
		return false, err
	}

	return value&(T(1)<<pos) != 0, nil
}

// Set returns the value with the bit at the given position forced to flag. All other bits stay unchanged.
func Set[T constraints.Unsigned](value T, pos uint, flag bool) (T, error) {
	if err := checkPos(pos, Len[T]()); err != nil {
		return value, err
	}

	// -b is either all zeroes or all ones, so the xor only flips the masked bit if it differs from flag.
	b := fromBool[T](flag)

	return value ^ ((-b ^ value) & (T(1) << pos)), nil
}

// On returns the value with the bit at the given position set.
func On[T constraints.Unsigned](value T, pos uint) (T, error) {
	return Set(value, pos, true)
}

// Off returns the value with the bit at the given position cleared.
func Off[T constraints.Unsigned](value T, pos uint) (T, error) {
	return Set(value, pos, false)
}

// Toggle returns the value with the bit at the given position flipped.
func Toggle[T constraints.Unsigned](value T, pos uint) (T, error) {
	if err := checkPos(pos, Len[T]()); err != nil {
		return value, err
	}

	return value ^ (T(1) << pos), nil
}

// Bits returns the bits of the value, least significant bit first. The result always has Len[T]() entries.
func Bits[T constraints.Unsigned](value T) []bool {
	width := Len[T]()

	result := make([]bool, width)
	for i := uint(0); i < width; i++ {
		result[i] = value&(T(1)<<i) != 0
	}

	return result
}

// Ones returns the ascending positions of all set bits.
// It is equivalent to collecting the true positions of Bits(value) but only visits the set bits.
func Ones[T constraints.Unsigned](value T) []uint {
	positions := make([]uint, 0, bits.OnesCount64(uint64(value)))
	for remaining := uint64(value); remaining != 0; remaining &= remaining - 1 {
		positions = append(positions, uint(bits.TrailingZeros64(remaining)))
	}

	return positions
}

// Zeroes returns the ascending positions of all cleared bits.
func Zeroes[T constraints.Unsigned](value T) []uint {
	return Ones(^value)
}

// FirstOne returns the position of the least significant set bit. The second return value is false if no bit is set.
func FirstOne[T constraints.Unsigned](value T) (uint, bool) {
	if value == 0 {
		return 0, false
	}

	return uint(bits.TrailingZeros64(uint64(value))), true
}

// FirstZero returns the position of the least significant cleared bit. The second return value is false if all
// bits are set.
func FirstZero[T constraints.Unsigned](value T) (uint, bool) {
	return FirstOne(^value)
}

// CountOnes returns the number of set bits.
func CountOnes[T constraints.Unsigned](value T) uint {
	return uint(bits.OnesCount64(uint64(value)))
}

// CountZeroes returns the number of cleared bits.
func CountZeroes[T constraints.Unsigned](value T) uint {
	return Len[T]() - CountOnes(value)
}

// Range returns the bits in the half-open range [start, end) shifted down to position 0.
//
// The bounds describe a fixed layout and not runtime data, so Range panics if start >= end or end > Len[T]().
func Range[T constraints.Unsigned](value T, start, end uint) T {
	assertRange(start, end, Len[T]())

	return (value >> start) & lowMask[T](end-start)
}

// SetRange returns the value with the bits in the half-open range [start, end) replaced by the low end-start bits
// of insert. Higher bits of insert are discarded.
//
// SetRange panics under the same conditions as Range.
func SetRange[T constraints.Unsigned](value T, start, end uint, insert T) T {
	assertRange(start, end, Len[T]())

	mask := lowMask[T](end-start) << start

	return (value &^ mask) | ((insert << start) & mask)
}

// SignedLeftShift computes value << amount if amount is positive, or value >> -amount if amount is negative.
// Shifting by the bit width or more yields 0.
func SignedLeftShift[T constraints.Unsigned, S constraints.Signed](value T, amount S) T {
	if amount < 0 {
		return value >> magnitude(amount)
	}

	return value << uint64(amount)
}

// SignedRightShift computes value >> amount if amount is positive, or value << -amount if amount is negative.
// Shifting by the bit width or more yields 0.
func SignedRightShift[T constraints.Unsigned, S constraints.Signed](value T, amount S) T {
	if amount < 0 {
		return value << magnitude(amount)
	}

	return value >> uint64(amount)
}

// Reverse returns the value with the order of all Len[T]() bits reversed, so bit i ends up at Len[T]()-1-i.
func Reverse[T constraints.Unsigned](value T) T {
	return T(bits.Reverse64(uint64(value)) >> (64 - Len[T]()))
}

func checkPos(pos, width uint) error {
	if pos >= width {
		return ierrors.WithMessagef(dotbits.ErrPosOutOfBounds, "position %d, width %d", pos, width)
	}

	return nil
}

func assertRange(start, end, width uint) {
	if start >= end || end > width {
		panic(ierrors.AssertionFailedf(dotbits.ErrPosOutOfBounds, "invalid bit range [%d, %d) for width %d", start, end, width))
	}
}

// lowMask returns a value with the n lowest bits set, for 0 < n <= Len[T]().
func lowMask[T constraints.Unsigned](n uint) T {
	return ^T(0) >> (Len[T]() - n)
}

func fromBool[T constraints.Unsigned](flag bool) T {
	if flag {
		return 1
	}

	return 0
}

// magnitude returns |amount| for a negative amount, including the minimum value of S.
func magnitude[S constraints.Signed](amount S) uint64 {
	return uint64(-int64(amount))
}
