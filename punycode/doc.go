// Package punycode implements Punycode, the ASCII-compatible encoding
// of Unicode strings defined by RFC 3492.
//
// Punycode is the per-label codec underneath Internationalized Domain
// Names: a sequence of Unicode code points is turned into an ASCII
// label, and back, with bit-exact agreement across implementations.
//
// # Label Shape
//
// An encoded label has two parts:
//
//	basic prefix  -  extended suffix
//
// The basic prefix is the input's ASCII code points copied literally,
// in order. If the prefix is non-empty it is followed by a single "-"
// delimiter; the last "-" in a label is the delimiter, any earlier "-"
// belongs to the prefix. The extended suffix encodes every non-ASCII
// code point as a generalized variable-length integer in base 36
// (digits a-z = 0..25, 0-9 = 26..35), with an adaptive bias keeping
// common deltas short.
//
// # Scope
//
// This package works on single, already-isolated labels. It does not
// split domain names on dots, handle the "xn--" ACE prefix, normalize
// or case-fold input, or enforce the 63-octet DNS label limit. The
// sibling idn package layers label splitting and the ACE prefix on top
// of this codec.
//
// # Failure Modes
//
// Exactly two error kinds exist, matched with errors.Is:
//
//	ErrOverflow     - internal arithmetic would exceed 32 bits
//	ErrInvalidInput - malformed digit, truncated digit sequence, or a
//	                  non-ASCII byte where only ASCII may appear
//
// Encoding can only fail with ErrOverflow, and only on pathological
// inputs far beyond realistic domain labels.
package punycode
