package expr

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// glyphs rewrites alternate spellings into the canonical vocabulary. At each
// position the first matching pair wins, so ³√ must precede √.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
	"π", "pi",
	"³√", "cbrt",
	"√", "sqrt",
	"sin⁻¹", "asin",
	"cos⁻¹", "acos",
	"tan⁻¹", "atan",
)

// Normalize rewrites calculator glyphs in s into their ASCII equivalents.
// Unrecognized characters pass through unchanged. Normalize never fails and
// is idempotent.
//
// The result is composed again after replacement: a replaced glyph followed by
// a combining mark leaves that mark next to an ASCII letter it can combine with.
func Normalize(s string) string {
	return norm.NFC.String(glyphs.Replace(norm.NFC.String(s)))
}
