package dotbits

import (
	"github.com/iotaledger/dotbits/ierrors"
)

var (
	// ErrPosOutOfBounds gets returned if a bit position or range bound is outside of the width or length
	// of the value that is accessed.
	ErrPosOutOfBounds = ierrors.New("position out of bounds")
	// ErrConversionOverflow gets returned if a boolean slice has a bit set that does not fit into the target type.
	ErrConversionOverflow = ierrors.New("converted value overflows")
)
