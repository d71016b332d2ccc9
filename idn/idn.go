// Package idn maps whole domain names (and the domain part of email
// addresses) to and from their Punycode form.
//
// It layers the two concerns the codec itself stays out of: splitting
// a name into labels on dots, and tagging encoded labels with the
// "xn--" ACE prefix. Mapping is best effort — a label that fails to
// encode or decode passes through unchanged, which matches how
// resolvers treat undecodable ACE labels.
//
// No normalization, case folding, or homograph checking is performed;
// callers needing full IDNA semantics should run those steps first.
package idn

import (
	"strings"
	"unicode/utf8"

	"github.com/Neumenon/punycode/punycode"
)

// ACEPrefix marks a label as Punycode-encoded (RFC 5890 "ASCII
// Compatible Encoding").
const ACEPrefix = "xn--"

// ToASCII converts every non-ASCII label of a domain name or email
// address to its ACE form. ASCII labels pass through untouched.
func ToASCII(s string) string {
	return mapLabels(s, func(label string) string {
		if isASCII(label) {
			return label
		}
		encoded, err := punycode.Encode(label)
		if err != nil {
			return label
		}
		return ACEPrefix + encoded
	})
}

// ToUnicode converts every ACE label of a domain name or email address
// back to Unicode. Labels without the prefix, and ACE labels that do
// not decode, pass through untouched.
func ToUnicode(s string) string {
	return mapLabels(s, func(label string) string {
		if !strings.HasPrefix(label, ACEPrefix) {
			return label
		}
		decoded, err := punycode.Decode(strings.ToLower(label[len(ACEPrefix):]))
		if err != nil {
			return label
		}
		return decoded
	})
}

// isSeparator reports whether r is a label separator: the ASCII dot or
// one of the IDNA-equivalent Unicode full stops.
func isSeparator(r rune) bool {
	return r == '.' || r == '。' || r == '．' || r == '｡'
}

func isASCII(s string) bool {
	for _, r := range s {
		if r >= 0x80 {
			return false
		}
	}
	return true
}

// mapLabels applies fn to each dot-separated label of s and rejoins
// the results with ASCII dots. Anything up to a leading "user@" part
// is kept verbatim so email addresses map on their domain part only.
func mapLabels(s string, fn func(string) string) string {
	var localPart string
	if at := strings.IndexByte(s, '@'); at != -1 {
		localPart = s[:at+1]
		s = s[at+1:]
	}

	var labels []string
	start := 0
	for i, r := range s {
		if !isSeparator(r) {
			continue
		}
		labels = append(labels, fn(s[start:i]))
		start = i + utf8.RuneLen(r)
	}
	labels = append(labels, fn(s[start:]))

	return localPart + strings.Join(labels, ".")
}
