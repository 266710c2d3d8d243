package bitvec

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/iotaledger/dotbits"
	"github.com/iotaledger/dotbits/ierrors"
)

// Bitmap returns a compressed bitmap that contains the positions of all true bits.
// Roaring bitmaps address 32-bit positions, so longer BitVecs are rejected.
func (b BitVec) Bitmap() (*roaring.Bitmap, error) {
	if uint64(len(b)) > math.MaxUint32+1 {
		return nil, ierrors.WithMessagef(dotbits.ErrPosOutOfBounds, "length %d exceeds the 32-bit bitmap range", len(b))
	}

	bitmap := roaring.New()
	for i, bit := range b {
		if bit {
			bitmap.Add(uint32(i))
		}
	}

	return bitmap, nil
}

// FromBitmap creates a BitVec that has a true bit at every position contained in the bitmap.
// The result ends with the highest contained position, so it is always trimmed.
func FromBitmap(bitmap *roaring.Bitmap) BitVec {
	if bitmap == nil || bitmap.IsEmpty() {
		return BitVec{}
	}

	result := make(BitVec, uint64(bitmap.Maximum())+1)
	for it := bitmap.Iterator(); it.HasNext(); {
		result[it.Next()] = true
	}

	return result
}
