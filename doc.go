// Package dotbits adds bit manipulation helpers to the fixed-width unsigned integers and to boolean slices.
//
// The functionality is split into two independent packages:
//
//   - bitmanip views an unsigned integer (8, 16, 32, 64, 128 bits or the native word) as a set of addressable bits.
//   - bitvec treats a []bool as a bit pattern and converts it from and to the unsigned integer types.
//
// Endianness: unless stated otherwise all operations are little-endian, i.e. position 0 is always the least
// significant bit. Position 0 of 0b00001111 is therefore set. Callers that need big-endian semantics have to
// reverse the value (bitmanip.Reverse) or the slice (slices.Reverse) themselves.
//
// Both packages only report the error kinds declared in this package, so callers can check results with
// errors.Is regardless of which package produced them.
package dotbits
