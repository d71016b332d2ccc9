package punycode

import "errors"

// RFC 3492 section 5 parameters. These are fixed by the RFC; changing
// any of them breaks interoperability with every other implementation.
const (
	base        int32 = 36
	tMin        int32 = 1
	tMax        int32 = 26
	skew        int32 = 38
	damp        int32 = 700
	initialBias int32 = 72
	initialN    int32 = 0x80

	delimiter = '-'

	maxInt32 int32 = 1<<31 - 1
)

var (
	// ErrOverflow reports that an intermediate value exceeded 32 bits.
	// Not reachable for realistic domain labels.
	ErrOverflow = errors.New("punycode: overflow, input needs wider integers to process")

	// ErrInvalidInput reports a malformed label passed to Decode: an
	// unknown digit character, a digit sequence cut off before its
	// final digit, or a non-ASCII byte in the basic prefix.
	ErrInvalidInput = errors.New("punycode: invalid input")
)

// adapt recomputes the bias after each delta is encoded or decoded.
// The bias scales the digit thresholds so that deltas near the running
// average stay short on the wire.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > (base-tMin)*tMax/2 {
		delta /= base - tMin
		k += base
	}
	return k + (base-tMin+1)*delta/(delta+skew)
}

// threshold returns t(k), the digit threshold at weight position k,
// clamped to [tMin, tMax].
func threshold(k, bias int32) int32 {
	t := k - bias
	switch {
	case t < tMin:
		return tMin
	case t > tMax:
		return tMax
	}
	return t
}

// digitToByte maps a digit value 0..35 to its wire byte (a-z, 0-9).
// Callers never pass values outside that range.
func digitToByte(d int32) byte {
	if d < 26 {
		return 'a' + byte(d)
	}
	return '0' + byte(d-26)
}

// byteToDigit maps a wire byte to its digit value. Letters decode
// case-insensitively. Returns base for any byte that is not a digit.
func byteToDigit(b byte) int32 {
	switch {
	case b >= 'a' && b <= 'z':
		return int32(b - 'a')
	case b >= 'A' && b <= 'Z':
		return int32(b - 'A')
	case b >= '0' && b <= '9':
		return int32(b-'0') + 26
	}
	return base
}
