package rigcodec

import "math"

// Wire-format constants. All four are load-bearing: the runtime's decoder
// hardcodes the same values.
const (
	// Scale is the fixed-point scale factor; the runtime keeps three
	// decimal places and nothing more.
	Scale = 1000

	// Base is the radix of the balanced digit encoding.
	Base = 128

	// Digits is the number of balanced digits per matrix element.
	Digits = 3

	// Bias shifts a balanced digit [-64,63] into the byte range [0,127].
	Bias = 64

	// EncodedMatrixLen is the length of one encoded 4x4 matrix.
	EncodedMatrixLen = 16 * Digits
)

// MaxValue is the largest scaled value that survives the three-digit
// encoding. Values outside [-MaxValue-1, MaxValue] overflow silently; that
// is an accepted range limit of the format.
const MaxValue = Base*Base*Base/2 - 1 // 2097151

// Reorient converts a column-major transform matrix (columns: X, Y, Z basis
// and translation) into the runtime's row-major layout, negating the X and
// Z basis columns. The correction is fixed, not configurable: it is the
// handedness difference between the editor and the runtime.
func Reorient(m [16]float64) [16]float64 {
	var out [16]float64
	for r := 0; r < 4; r++ {
		out[4*r+0] = -m[r]
		out[4*r+1] = m[4+r]
		out[4*r+2] = -m[8+r]
		out[4*r+3] = m[12+r]
	}
	return out
}

// symmod returns the representative of n mod Base in [-Base/2, Base/2).
func symmod(n int64) int64 {
	r := n % Base
	if r >= Base/2 {
		r -= Base
	} else if r < -Base/2 {
		r += Base
	}
	return r
}

// EncodeElement packs one matrix element as millesimal fixed-point into
// three biased balanced base-128 digits. The result is always exactly
// Digits characters, each with code point in [0,127].
func EncodeElement(v float64) string {
	n := int64(math.Round(v * Scale))

	x0 := symmod(n)
	r1 := (n - x0) / Base
	x1 := symmod(r1)
	// The top digit is not reduced; out-of-range values wrap silently.
	x2 := (r1 - x1) / Base

	return string([]byte{
		byte((x0 + Bias) & 0x7f),
		byte((x1 + Bias) & 0x7f),
		byte((x2 + Bias) & 0x7f),
	})
}

// EncodeMatrix re-orients m and encodes all 16 elements, yielding a
// 48-character string.
func EncodeMatrix(m [16]float64) string {
	out := Reorient(m)
	buf := make([]byte, 0, EncodedMatrixLen)
	for _, v := range out {
		buf = append(buf, EncodeElement(v)...)
	}
	return string(buf)
}
