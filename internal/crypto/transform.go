package crypto

// Encrypt transforms a 6-digit number string into its encoded form.
//
// Steps: validate, parse, shift each digit by +7 mod 10, then swap positions
// (0,2), (1,3), (4,5). The returned string is always exactly six digits.
//
// The only failure mode is invalid input (not a 6-character all-digit
// string), reported as an error matching errs.ErrInvalidInput.
func Encrypt(input string) (string, error) {
	seq, err := ParseSequence(input)
	if err != nil {
		return "", err
	}
	return seq.Shift(ShiftKey).Swap().String(), nil
}

// Decrypt recovers the original number from an encoded 6-digit string.
//
// The sub-steps run in reverse order relative to Encrypt: the swap is undone
// first (applying it again, since it is an involution), then the shift is
// undone by adding 3, which is -7 mod 10. Any string that passes validation
// is processed, regardless of whether it came from Encrypt.
//
// For every valid input s, Decrypt(Encrypt(s)) == s.
func Decrypt(input string) (string, error) {
	seq, err := ParseSequence(input)
	if err != nil {
		return "", err
	}
	return seq.Swap().Shift(-ShiftKey).String(), nil
}
