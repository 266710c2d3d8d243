//go:build ignore

package bitmanip

//go:generate go run github.com/iotaledger/dotbits/codegen/widths/cmd widths.go

// WordType is a WordBase that exposes its bits (WordBits) through the BitManip methods.
type WordType WordBase

var _ BitManip[WordType] = WordType(0)

// Len returns the bit width of WordType (WordBits).
func (w WordType) Len() uint {
	return Len[WordType]()
}

// Get returns the bit at the given position.
func (w WordType) Get(pos uint) (bool, error) {
	return Get(w, pos)
}

// Set returns the value with the bit at the given position forced to flag.
func (w WordType) Set(pos uint, flag bool) (WordType, error) {
	return Set(w, pos, flag)
}

// On returns the value with the bit at the given position set.
func (w WordType) On(pos uint) (WordType, error) {
	return On(w, pos)
}

// Off returns the value with the bit at the given position cleared.
func (w WordType) Off(pos uint) (WordType, error) {
	return Off(w, pos)
}

// Toggle returns the value with the bit at the given position flipped.
func (w WordType) Toggle(pos uint) (WordType, error) {
	return Toggle(w, pos)
}

// Bits returns all bits (WordBits) of the value, least significant bit first.
func (w WordType) Bits() []bool {
	return Bits(w)
}

// Ones returns the ascending positions of all set bits.
func (w WordType) Ones() []uint {
	return Ones(w)
}

// Zeroes returns the ascending positions of all cleared bits.
func (w WordType) Zeroes() []uint {
	return Zeroes(w)
}

// FirstOne returns the position of the least significant set bit, if any.
func (w WordType) FirstOne() (uint, bool) {
	return FirstOne(w)
}

// FirstZero returns the position of the least significant cleared bit, if any.
func (w WordType) FirstZero() (uint, bool) {
	return FirstZero(w)
}

// CountOnes returns the number of set bits.
func (w WordType) CountOnes() uint {
	return CountOnes(w)
}

// CountZeroes returns the number of cleared bits.
func (w WordType) CountZeroes() uint {
	return CountZeroes(w)
}

// Range returns the bits in [start, end) shifted down to position 0. It panics if start >= end or end exceeds the bit width (WordBits).
func (w WordType) Range(start, end uint) WordType {
	return Range(w, start, end)
}

// SetRange returns the value with the bits in [start, end) replaced by the low bits of insert.
// It panics if start >= end or end exceeds the bit width (WordBits).
func (w WordType) SetRange(start, end uint, insert WordType) WordType {
	return SetRange(w, start, end, insert)
}

// SignedLeftShift shifts left by a positive and right by a negative amount.
func (w WordType) SignedLeftShift(amount int) WordType {
	return SignedLeftShift(w, amount)
}

// SignedRightShift shifts right by a positive and left by a negative amount.
func (w WordType) SignedRightShift(amount int) WordType {
	return SignedRightShift(w, amount)
}

// Reverse returns the value with the order of all bits (WordBits) reversed.
func (w WordType) Reverse() WordType {
	return Reverse(w)
}
