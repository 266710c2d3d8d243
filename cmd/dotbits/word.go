package main

import (
	"math/big"
	"strings"

	"lukechampine.com/uint128"

	"github.com/iotaledger/dotbits"
	"github.com/iotaledger/dotbits/bitmanip"
	"github.com/iotaledger/dotbits/bitvec"
	"github.com/iotaledger/dotbits/constraints"
	"github.com/iotaledger/dotbits/ierrors"
)

const (
	formatBin = "bin"
	formatHex = "hex"
	formatDec = "dec"
)

type fixedWidth[T any] interface {
	constraints.Unsigned
	bitmanip.BitManip[T]
}

// word adapts one of the bitmanip width types to the command line.
type word[T bitmanip.BitManip[T]] struct {
	fromUint128 func(uint128.Uint128) (T, error)
	toUint128   func(T) uint128.Uint128
	fromBits    func(bitvec.BitVec) (T, error)
}

func newFixedWord[T fixedWidth[T]]() word[T] {
	return word[T]{
		fromUint128: func(value uint128.Uint128) (T, error) {
			if value.Hi != 0 || value.Lo > uint64(^T(0)) {
				return 0, ierrors.WithMessagef(dotbits.ErrConversionOverflow, "%s does not fit into %d bits", value, bitmanip.Len[T]())
			}

			return T(value.Lo), nil
		},
		toUint128: func(value T) uint128.Uint128 {
			return uint128.From64(uint64(value))
		},
		fromBits: bitvec.To[T],
	}
}

func newU128Word() word[bitmanip.U128] {
	return word[bitmanip.U128]{
		fromUint128: func(value uint128.Uint128) (bitmanip.U128, error) {
			return bitmanip.U128(value), nil
		},
		toUint128: bitmanip.U128.Uint128,
		fromBits: func(b bitvec.BitVec) (bitmanip.U128, error) {
			value, err := b.ToUint128E()

			return bitmanip.U128(value), err
		},
	}
}

// parse reads a value with an optional 0b, 0o or 0x prefix. The whole string must be a number.
func (w word[T]) parse(s string) (T, error) {
	var zero T

	value, ok := new(big.Int).SetString(s, 0)
	if !ok || value.Sign() < 0 {
		return zero, ierrors.WithMessagef(ErrInvalidArguments, "invalid value %q", s)
	}

	if value.BitLen() > 128 {
		return zero, ierrors.WithMessagef(dotbits.ErrConversionOverflow, "%s does not fit into 128 bits", s)
	}

	return w.fromUint128(uint128.FromBig(value))
}

func (w word[T]) format(value T, format string) string {
	switch format {
	case formatDec:
		return w.toUint128(value).String()
	case formatHex:
		digits := w.toUint128(value).Big().Text(16)
		width := int(value.Len()+3) / 4

		return "0x" + strings.Repeat("0", width-len(digits)) + digits
	default:
		return "0b" + bitvec.BitVec(value.Bits()).String()
	}
}
