package bitvec

import (
	"math/bits"

	"lukechampine.com/uint128"

	"github.com/iotaledger/dotbits"
	"github.com/iotaledger/dotbits/constraints"
	"github.com/iotaledger/dotbits/ierrors"
)

// From returns the bits of value, least significant bit first.
// The result always has as many entries as T has bits.
func From[T constraints.Unsigned](value T) BitVec {
	width := widthOf[T]()

	result := make(BitVec, width)
	for i := uint(0); i < width; i++ {
		result[i] = value&(T(1)<<i) != 0
	}

	return result
}

// FromUint128 returns the 128 bits of value, least significant bit first.
func FromUint128(value uint128.Uint128) BitVec {
	result := make(BitVec, 128)
	for i := uint(0); i < 64; i++ {
		result[i] = value.Lo&(1<<i) != 0
		result[i+64] = value.Hi&(1<<i) != 0
	}

	return result
}

// To folds the BitVec into a T by setting bit i for every true entry i.
//
// The BitVec may be shorter or longer than T, but if any true entry lies at or beyond the bit width of T
// the conversion fails with dotbits.ErrConversionOverflow.
func To[T constraints.Unsigned](b BitVec) (T, error) {
	width := widthOf[T]()

	var value T
	for i, bit := range b {
		if !bit {
			continue
		}

		if uint(i) >= width {
			return 0, overflowError(uint(i), width)
		}

		value |= T(1) << uint(i)
	}

	return value, nil
}

// MustTo is like To but panics if the BitVec does not fit into T.
func MustTo[T constraints.Unsigned](b BitVec) T {
	value, err := To[T](b)
	if err != nil {
		panic(err)
	}

	return value
}

// ToUint8 converts the BitVec to a uint8 and panics if it does not fit.
func (b BitVec) ToUint8() uint8 {
	return MustTo[uint8](b)
}

// ToUint8E converts the BitVec to a uint8.
func (b BitVec) ToUint8E() (uint8, error) {
	return To[uint8](b)
}

// ToUint16 converts the BitVec to a uint16 and panics if it does not fit.
func (b BitVec) ToUint16() uint16 {
	return MustTo[uint16](b)
}

// ToUint16E converts the BitVec to a uint16.
func (b BitVec) ToUint16E() (uint16, error) {
	return To[uint16](b)
}

// ToUint32 converts the BitVec to a uint32 and panics if it does not fit.
func (b BitVec) ToUint32() uint32 {
	return MustTo[uint32](b)
}

// ToUint32E converts the BitVec to a uint32.
func (b BitVec) ToUint32E() (uint32, error) {
	return To[uint32](b)
}

// ToUint64 converts the BitVec to a uint64 and panics if it does not fit.
func (b BitVec) ToUint64() uint64 {
	return MustTo[uint64](b)
}

// ToUint64E converts the BitVec to a uint64.
func (b BitVec) ToUint64E() (uint64, error) {
	return To[uint64](b)
}

// ToUint converts the BitVec to a uint and panics if it does not fit.
func (b BitVec) ToUint() uint {
	return MustTo[uint](b)
}

// ToUintE converts the BitVec to a uint.
func (b BitVec) ToUintE() (uint, error) {
	return To[uint](b)
}

// ToUint128 converts the BitVec to a uint128.Uint128 and panics if it does not fit.
func (b BitVec) ToUint128() uint128.Uint128 {
	value, err := b.ToUint128E()
	if err != nil {
		panic(err)
	}

	return value
}

// ToUint128E converts the BitVec to a uint128.Uint128.
func (b BitVec) ToUint128E() (uint128.Uint128, error) {
	var value uint128.Uint128
	for i, bit := range b {
		switch {
		case !bit:
			continue
		case i >= 128:
			return uint128.Zero, overflowError(uint(i), 128)
		case i >= 64:
			value.Hi |= 1 << uint(i-64)
		default:
			value.Lo |= 1 << uint(i)
		}
	}

	return value, nil
}

func widthOf[T constraints.Unsigned]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

func overflowError(pos, width uint) error {
	return ierrors.WithMessagef(dotbits.ErrConversionOverflow, "bit %d is set but the target has %d bits", pos, width)
}
