// NumCrypt v1.0
//
// NumCrypt is a small desktop tool that transforms a 6-digit number with a
// fixed, reversible digit-substitution scheme and recovers the original:
//   - each digit is shifted by +7 modulo 10
//   - digit positions (1,3), (2,4), and (5,6) are exchanged
//
// This is casual obscurity, not cryptography: there is no key and no
// security property.
//
// Build modes:
//   - Default build: GUI + CLI (requires graphics libraries)
//   - CLI-only build: go build -tags cli (no graphics dependencies)

package main

// version is the application version displayed in the window title.
// Format: "vMAJOR.MINOR" (e.g., "v1.0")
const version = "v1.0"

func main() {
	run()
}
