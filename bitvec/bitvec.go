package bitvec

import (
	"strings"

	"github.com/iotaledger/dotbits"
	"github.com/iotaledger/dotbits/ierrors"
)

// ErrInvalidDigit gets returned if a string passed to Parse contains anything but binary digits and underscores.
var ErrInvalidDigit = ierrors.New("invalid binary digit")

// BitVec is a bit pattern stored as one bool per bit, least significant bit first.
// The length is controlled by the caller and is independent of any integer width.
type BitVec []bool

// New creates a BitVec of the given length with all bits cleared.
func New(length uint) BitVec {
	return make(BitVec, length)
}

// Len returns the number of bits in the BitVec.
func (b BitVec) Len() uint {
	return uint(len(b))
}

// Get returns the bit at the given position.
func (b BitVec) Get(pos uint) (bool, error) {
	if err := b.checkPos(pos); err != nil {
		return false, err
	}

	return b[pos], nil
}

// Ones returns the ascending positions of all bits that are true.
func (b BitVec) Ones() []uint {
	positions := make([]uint, 0)
	for i, bit := range b {
		if bit {
			positions = append(positions, uint(i))
		}
	}

	return positions
}

// Zeroes returns the ascending positions of all bits that are false.
func (b BitVec) Zeroes() []uint {
	positions := make([]uint, 0)
	for i, bit := range b {
		if !bit {
			positions = append(positions, uint(i))
		}
	}

	return positions
}

// Set sets the bit at the given position to flag.
//
// Positions beyond the current length are rejected with dotbits.ErrPosOutOfBounds and leave the BitVec untouched.
// Use Extend to grow the BitVec first.
func (b *BitVec) Set(pos uint, flag bool) error {
	if err := b.checkPos(pos); err != nil {
		return err
	}

	(*b)[pos] = flag

	return nil
}

// SetOn is equivalent to Set(pos, true).
func (b *BitVec) SetOn(pos uint) error {
	return b.Set(pos, true)
}

// SetOff is equivalent to Set(pos, false).
func (b *BitVec) SetOff(pos uint) error {
	return b.Set(pos, false)
}

// Toggle flips the bit at the given position. It follows the same bounds rules as Set.
func (b *BitVec) Toggle(pos uint) error {
	if err := b.checkPos(pos); err != nil {
		return err
	}

	(*b)[pos] = !(*b)[pos]

	return nil
}

// Extend grows the BitVec to the given length by appending false bits. It never shrinks the BitVec.
func (b *BitVec) Extend(length uint) {
	if length > b.Len() {
		*b = append(*b, make(BitVec, length-b.Len())...)
	}
}

// Trim removes all trailing false bits, so the BitVec is either empty or ends with a true bit afterwards.
func (b *BitVec) Trim() {
	end := len(*b)
	for end > 0 && !(*b)[end-1] {
		end--
	}

	*b = (*b)[:end]
}

// String returns the bits as a string of '0' and '1' digits, most significant bit first.
func (b BitVec) String() string {
	var builder strings.Builder
	builder.Grow(len(b))

	for i := len(b) - 1; i >= 0; i-- {
		if b[i] {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}

	return builder.String()
}

// Parse creates a BitVec from a string of '0' and '1' digits, most significant bit first.
// Underscores are ignored so that grouped digits like "1010_0110" are accepted.
func Parse(digits string) (BitVec, error) {
	digits = strings.ReplaceAll(digits, "_", "")

	result := make(BitVec, len(digits))
	for i, digit := range []byte(digits) {
		switch digit {
		case '0':
		case '1':
			result[len(digits)-1-i] = true
		default:
			return nil, ierrors.WithMessagef(ErrInvalidDigit, "%q at index %d", digit, i)
		}
	}

	return result, nil
}

func (b BitVec) checkPos(pos uint) error {
	if pos >= b.Len() {
		return ierrors.WithMessagef(dotbits.ErrPosOutOfBounds, "position %d, length %d", pos, len(b))
	}

	return nil
}
