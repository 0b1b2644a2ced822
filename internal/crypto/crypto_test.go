package crypto

import (
	"math/rand"
	"testing"

	errs "NumCrypt/internal/errors"
)

func TestParseSequence(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		seq, err := ParseSequence("123456")
		if err != nil {
			t.Fatalf("ParseSequence failed: %v", err)
		}
		want := Sequence{1, 2, 3, 4, 5, 6}
		if seq != want {
			t.Errorf("ParseSequence = %v; want %v", seq, want)
		}
	})

	t.Run("leading zeros preserved", func(t *testing.T) {
		seq, err := ParseSequence("000042")
		if err != nil {
			t.Fatalf("ParseSequence failed: %v", err)
		}
		if seq.String() != "000042" {
			t.Errorf("round-trip = %q; want %q", seq.String(), "000042")
		}
	})

	t.Run("rejected inputs", func(t *testing.T) {
		rejected := []string{
			"",         // empty
			"12345",    // too short
			"1234567",  // too long
			"12345a",   // trailing letter
			"abc123",   // leading letters
			"12 345",   // embedded space
			"-23456",   // sign
			"12.345",   // decimal point
			" 12345",   // leading space
			"123456\n", // trailing newline
			"１２３４５６",   // full-width digits (not ASCII)
		}
		for _, input := range rejected {
			if _, err := ParseSequence(input); err == nil {
				t.Errorf("ParseSequence(%q) should have failed", input)
			} else if !errs.IsInvalidInput(err) {
				t.Errorf("ParseSequence(%q) error should match ErrInvalidInput, got %v", input, err)
			}
		}
	})
}

func TestSwapIsInvolution(t *testing.T) {
	seq := Sequence{1, 2, 3, 4, 5, 6}
	swapped := seq.Swap()

	want := Sequence{3, 4, 1, 2, 6, 5}
	if swapped != want {
		t.Errorf("Swap = %v; want %v", swapped, want)
	}

	if swapped.Swap() != seq {
		t.Errorf("Swap applied twice should return the original: got %v", swapped.Swap())
	}

	// Receiver must be untouched
	if seq != (Sequence{1, 2, 3, 4, 5, 6}) {
		t.Errorf("Swap mutated its receiver: %v", seq)
	}

	// Involution over random sequences
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		var s Sequence
		for j := range s {
			s[j] = byte(rng.Intn(10))
		}
		if s.Swap().Swap() != s {
			t.Fatalf("Swap not an involution for %v", s)
		}
	}
}

func TestShift(t *testing.T) {
	seq := Sequence{0, 1, 2, 8, 9, 5}

	shifted := seq.Shift(7)
	want := Sequence{7, 8, 9, 5, 6, 2}
	if shifted != want {
		t.Errorf("Shift(7) = %v; want %v", shifted, want)
	}

	// -7 and +3 are the same shift mod 10
	if shifted.Shift(-7) != seq {
		t.Errorf("Shift(-7) should undo Shift(7)")
	}
	if shifted.Shift(3) != seq {
		t.Errorf("Shift(3) should undo Shift(7)")
	}

	// Shift by 0 and by 10 are identity
	if seq.Shift(0) != seq || seq.Shift(10) != seq {
		t.Error("Shift(0) and Shift(10) should be identity")
	}
}

func TestEncryptVectors(t *testing.T) {
	vectors := []struct {
		input string
		want  string
	}{
		{"123456", "018932"},
		{"000000", "777777"},
		{"999999", "666666"},
	}
	for _, v := range vectors {
		got, err := Encrypt(v.input)
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", v.input, err)
		}
		if got != v.want {
			t.Errorf("Encrypt(%q) = %q; want %q", v.input, got, v.want)
		}
	}
}

func TestDecryptVectors(t *testing.T) {
	vectors := []struct {
		input string
		want  string
	}{
		{"018932", "123456"},
		{"777777", "000000"},
		{"666666", "999999"},
	}
	for _, v := range vectors {
		got, err := Decrypt(v.input)
		if err != nil {
			t.Fatalf("Decrypt(%q) failed: %v", v.input, err)
		}
		if got != v.want {
			t.Errorf("Decrypt(%q) = %q; want %q", v.input, got, v.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Random sample of the valid domain, both directions
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		var s Sequence
		for j := range s {
			s[j] = byte(rng.Intn(10))
		}
		input := s.String()

		enc, err := Encrypt(input)
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", input, err)
		}
		if len(enc) != Length {
			t.Fatalf("Encrypt(%q) produced %d characters", input, len(enc))
		}
		dec, err := Decrypt(enc)
		if err != nil {
			t.Fatalf("Decrypt(%q) failed: %v", enc, err)
		}
		if dec != input {
			t.Fatalf("Decrypt(Encrypt(%q)) = %q", input, dec)
		}

		// The reverse composition must also cancel
		dec2, err := Decrypt(input)
		if err != nil {
			t.Fatalf("Decrypt(%q) failed: %v", input, err)
		}
		enc2, err := Encrypt(dec2)
		if err != nil {
			t.Fatalf("Encrypt(%q) failed: %v", dec2, err)
		}
		if enc2 != input {
			t.Fatalf("Encrypt(Decrypt(%q)) = %q", input, enc2)
		}
	}
}

func TestTransformRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"", "12345", "1234567", "abc123", "12 345"} {
		if out, err := Encrypt(input); err == nil {
			t.Errorf("Encrypt(%q) = %q; want error", input, out)
		} else if !errs.IsInvalidInput(err) {
			t.Errorf("Encrypt(%q) error should match ErrInvalidInput, got %v", input, err)
		}
		if out, err := Decrypt(input); err == nil {
			t.Errorf("Decrypt(%q) = %q; want error", input, out)
		} else if !errs.IsInvalidInput(err) {
			t.Errorf("Decrypt(%q) error should match ErrInvalidInput, got %v", input, err)
		}
	}
}
