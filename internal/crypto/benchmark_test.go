package crypto

import (
	"testing"
)

// BenchmarkEncrypt measures a full validate+shift+swap+render pass.
func BenchmarkEncrypt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Encrypt("123456")
	}
}

// BenchmarkDecrypt measures a full validate+swap+shift+render pass.
func BenchmarkDecrypt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Decrypt("018932")
	}
}

// BenchmarkParseSequence measures validation and parsing alone.
func BenchmarkParseSequence(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseSequence("123456")
	}
}
