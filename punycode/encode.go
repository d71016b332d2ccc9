package punycode

// Encode converts a Unicode label to its Punycode ASCII form. The
// input is interpreted as a sequence of Unicode code points; see
// EncodeRunes for the underlying transform. Fails only with
// ErrOverflow, on inputs far larger than any real domain label.
func Encode(label string) (string, error) {
	return EncodeRunes([]rune(label))
}

// EncodeRunes converts a sequence of Unicode code points to its
// Punycode ASCII form.
//
// ASCII code points are copied literally, in order, and form the basic
// prefix. If the prefix is non-empty a single "-" delimiter follows.
// Non-ASCII code points are then encoded in ascending numeric order as
// adaptive base-36 deltas. Pure-ASCII input yields the input plus a
// trailing "-"; empty input yields the empty string.
func EncodeRunes(input []rune) (string, error) {
	output := make([]byte, 0, len(input)+8)
	remaining := 0
	for _, r := range input {
		if r < initialN {
			output = append(output, byte(r))
		} else {
			remaining++
		}
	}

	basicLen := int32(len(output))
	handled := basicLen
	if basicLen > 0 {
		output = append(output, delimiter)
	}

	n, delta, bias := initialN, int32(0), initialBias
	for remaining > 0 {
		// Smallest not-yet-handled code point. remaining > 0
		// guarantees at least one candidate >= n exists.
		m := maxInt32
		for _, r := range input {
			if r >= n && r < m {
				m = r
			}
		}

		if m-n > (maxInt32-delta)/(handled+1) {
			return "", ErrOverflow
		}
		delta += (m - n) * (handled + 1)
		n = m

		for _, r := range input {
			if r < n {
				if delta == maxInt32 {
					return "", ErrOverflow
				}
				delta++
				continue
			}
			if r > n {
				continue
			}
			q := delta
			for k := base; ; k += base {
				t := threshold(k, bias)
				if q < t {
					break
				}
				output = append(output, digitToByte(t+(q-t)%(base-t)))
				q = (q - t) / (base - t)
			}
			output = append(output, digitToByte(q))
			bias = adapt(delta, handled+1, handled == basicLen)
			delta = 0
			handled++
			remaining--
		}
		delta++
		n++
	}

	return string(output), nil
}
