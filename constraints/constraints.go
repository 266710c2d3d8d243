package constraints

// Unsigned is a constraint that permits any unsigned integer type that fits into a machine word.
// The 128-bit width has no predeclared Go type and is handled by bitmanip.U128 instead.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is a constraint that permits any signed integer type.
// If future releases of Go add new predeclared signed integer types,
// this constraint will be modified to include them.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}
