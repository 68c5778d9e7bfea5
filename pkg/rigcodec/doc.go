// Package rigcodec encodes rig transform matrices into the compact printable
// format consumed by the in-game code runtime.
//
// A 4x4 transform is first re-oriented from the editor's column-major,
// right-handed convention into the runtime's row-major convention (negating
// the X and Z basis columns), then each element is packed as millesimal
// fixed-point into three balanced base-128 digits, biased into the printable
// byte range [0,127]. One matrix always encodes to exactly 48 characters.
//
// The format is write-only from this side: decoding happens in the runtime.
// The scale factor, radix, digit count and bias are part of the wire
// contract and must not change.
package rigcodec
