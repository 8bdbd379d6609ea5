package odometer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// glyphIDCounter is a plain counter (no atomic — odometer is single-threaded,
// all reconciliation happens on the host's update callback).
var glyphIDCounter uint64

func nextGlyphID() uint64 {
	glyphIDCounter++
	return glyphIDCounter
}

// Glyph is a single rendered character unit with a stable identity. Identity
// is independent of the displayed symbol: two glyphs showing the same symbol
// at different times have different IDs unless the reconciler explicitly
// reused one. The host keys enter/exit animations off the ID, so a reused
// glyph is never re-animated.
type Glyph struct {
	ID      uint64
	Symbol  string // one grapheme cluster
	Numeric bool   // decimal digit; gets the directional Roll transition
}

// newGlyph mints a glyph with a fresh identity for the given grapheme.
func newGlyph(symbol string) Glyph {
	return Glyph{
		ID:      nextGlyphID(),
		Symbol:  symbol,
		Numeric: isDigitSymbol(symbol),
	}
}

// isDigitSymbol reports whether the grapheme is a single decimal digit rune.
func isDigitSymbol(symbol string) bool {
	r, size := utf8.DecodeRuneInString(symbol)
	return size == len(symbol) && unicode.IsDigit(r)
}

// splitGraphemes appends the grapheme clusters of s to dst and returns it.
// Grapheme clusters, not runes: a combining sequence or emoji counts as one
// displayed glyph.
func splitGraphemes(dst []string, s string) []string {
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		dst = append(dst, cluster)
	}
	return dst
}
