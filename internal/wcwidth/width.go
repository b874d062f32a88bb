// Package wcwidth determines the on-screen display width of a code point,
// backing the glyph-width rule in spec §4.3.2.
package wcwidth

import "github.com/unilibs/uniwidth"

// zeroWidthRanges lists the explicit zero-width combining ranges spec §4.3.2
// calls out in addition to whatever uniwidth already treats as combining:
// combining diacriticals, their extended/supplement blocks, combining half
// marks, variation selectors, and joiners.
var zeroWidthRanges = [][2]rune{
	{0x0300, 0x036F}, // Combining Diacritical Marks
	{0x1DC0, 0x1DFF}, // Combining Diacritical Marks Supplement
	{0x20D0, 0x20FF}, // Combining Diacritical Marks for Symbols
	{0xFE20, 0xFE2F}, // Combining Half Marks
	{0x200B, 0x200D}, // ZWSP, ZWNJ, ZWJ
	{0xFE00, 0xFE0F}, // Variation Selectors
	{0xE0100, 0xE01EF}, // Variation Selectors Supplement
}

func inRanges(r rune, ranges [][2]rune) bool {
	for _, rg := range ranges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// Width returns the display width of r: 2 for wide (East-Asian-Wide,
// Fullwidth, most emoji), 1 for normal, 0 for zero-width combining marks and
// joiners/variation selectors (spec §4.3.2).
func Width(r rune) int {
	if r == 0 {
		return 0
	}
	if inRanges(r, zeroWidthRanges) {
		return 0
	}
	return uniwidth.RuneWidth(r)
}

// IsWide reports whether r occupies two cells.
func IsWide(r rune) bool { return Width(r) == 2 }

// IsCombining reports whether r has zero display width and should be
// appended to the previous cell rather than placed on its own.
func IsCombining(r rune) bool { return Width(r) == 0 && r != 0 }
