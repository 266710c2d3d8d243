package bitmanip

// BitManip is the method set shared by the width types of this package (U8, U16, U32, U64, Uint and U128).
//
// All methods use value receivers: operations that modify bits return the modified value and leave the
// receiver untouched, so calls can be chained on the result.
type BitManip[T any] interface {
	// Len returns the bit width of the type.
	Len() uint
	// Get returns the bit at the given position.
	Get(pos uint) (bool, error)
	// Set returns the value with the bit at the given position forced to flag.
	Set(pos uint, flag bool) (T, error)
	// On returns the value with the bit at the given position set.
	On(pos uint) (T, error)
	// Off returns the value with the bit at the given position cleared.
	Off(pos uint) (T, error)
	// Toggle returns the value with the bit at the given position flipped.
	Toggle(pos uint) (T, error)
	// Bits returns the bits of the value, least significant bit first.
	Bits() []bool
	// Ones returns the ascending positions of all set bits.
	Ones() []uint
	// Zeroes returns the ascending positions of all cleared bits.
	Zeroes() []uint
	// FirstOne returns the position of the least significant set bit, if any.
	FirstOne() (uint, bool)
	// FirstZero returns the position of the least significant cleared bit, if any.
	FirstZero() (uint, bool)
	// CountOnes returns the number of set bits.
	CountOnes() uint
	// CountZeroes returns the number of cleared bits.
	CountZeroes() uint
	// Range returns the bits in [start, end) shifted down to position 0.
	Range(start, end uint) T
	// SetRange returns the value with the bits in [start, end) replaced by the low bits of insert.
	SetRange(start, end uint, insert T) T
	// SignedLeftShift shifts left by a positive and right by a negative amount.
	SignedLeftShift(amount int) T
	// SignedRightShift shifts right by a positive and left by a negative amount.
	SignedRightShift(amount int) T
	// Reverse returns the value with the order of all bits reversed.
	Reverse() T
}
