package punycode

import "testing"

// ============================================================
// Codec Benchmarks
// ============================================================
//
// Run with:
//   go test -bench=. -benchmem ./punycode/

// BenchmarkEncode_ASCII benchmarks the pure-ASCII fast path.
func BenchmarkEncode_ASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Encode("example")
	}
}

// BenchmarkEncode_Mixed benchmarks a typical IDN label.
func BenchmarkEncode_Mixed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Encode("mañana")
	}
}

// BenchmarkEncode_NonASCII benchmarks a label with no basic prefix.
func BenchmarkEncode_NonASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Encode("ドメイン名例")
	}
}

// BenchmarkDecode_Mixed benchmarks decoding a typical IDN label.
func BenchmarkDecode_Mixed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Decode("maana-pta")
	}
}

// BenchmarkDecode_NonASCII benchmarks decoding with ordered insertion
// on every code point.
func BenchmarkDecode_NonASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Decode("eckwd4c7cu47r2wf")
	}
}
