package punycode

import (
	"fmt"
	"strings"
)

// Decode converts a Punycode ASCII label back to its Unicode form.
// Fails with ErrInvalidInput on malformed labels and ErrOverflow on
// labels whose deltas exceed 32-bit arithmetic; match with errors.Is.
func Decode(label string) (string, error) {
	output, err := DecodeRunes(label)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// DecodeRunes converts a Punycode ASCII label back to the sequence of
// Unicode code points it encodes.
//
// The last "-" in the label, if any, separates the literal basic
// prefix from the encoded extended suffix; a label without "-" is all
// extended suffix. Digits decode case-insensitively, and the basic
// prefix keeps its original case.
func DecodeRunes(label string) ([]rune, error) {
	output := make([]rune, 0, len(label))
	pos := 0
	if d := strings.LastIndexByte(label, delimiter); d >= 0 {
		for j := 0; j < d; j++ {
			b := label[j]
			if b >= 0x80 {
				return nil, fmt.Errorf("%w: non-ASCII byte 0x%02x in basic prefix at offset %d", ErrInvalidInput, b, j)
			}
			output = append(output, rune(b))
		}
		pos = d + 1
	}

	n, bias := initialN, initialBias
	i := int32(0)
	for pos < len(label) {
		oldi, w := i, int32(1)
		for k := base; ; k += base {
			if pos == len(label) {
				return nil, fmt.Errorf("%w: digit sequence truncated at offset %d", ErrInvalidInput, pos)
			}
			digit := byteToDigit(label[pos])
			if digit == base {
				return nil, fmt.Errorf("%w: invalid digit %q at offset %d", ErrInvalidInput, label[pos], pos)
			}
			pos++

			if digit > (maxInt32-i)/w {
				return nil, ErrOverflow
			}
			i += digit * w

			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > maxInt32/(base-t) {
				return nil, ErrOverflow
			}
			w *= base - t
		}

		numPoints := int32(len(output) + 1)
		bias = adapt(i-oldi, numPoints, oldi == 0)

		if i/numPoints > maxInt32-n {
			return nil, ErrOverflow
		}
		n += i / numPoints
		i %= numPoints

		// Ordered insertion at position i, not append: the delta
		// encodes both the code point and where it goes.
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}

	return output, nil
}
