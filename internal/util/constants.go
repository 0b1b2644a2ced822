// Package util provides common constants shared by the NumCrypt UI layers.
package util

import "image/color"

// Color constants for UI status messages
var (
	WHITE       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	RED         = color.RGBA{0xff, 0x00, 0x00, 0xff}
	GREEN       = color.RGBA{0x00, 0xff, 0x00, 0xff}
	YELLOW      = color.RGBA{0xcc, 0x70, 0x00, 0xff} // Dark amber for better readability
	TRANSPARENT = color.RGBA{0x00, 0x00, 0x00, 0x00}
)
