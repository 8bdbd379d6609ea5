package odometer

// DefaultMaxFactor is the peak transition factor used when a caller does not
// configure one. Smaller magnitudes (e.g. 5) read better at small font sizes.
const DefaultMaxFactor = 20.0

// recoilRatio is the fraction of MaxFactor below which a glyph slides in its
// travel direction; above it the offset reverses and overshoots past rest.
const recoilRatio = 0.15

// Direction is the travel direction of a rolling glyph. A value increase
// rolls upward, a decrease rolls downward.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// sign returns +1 for up, -1 for down.
func (d Direction) sign() float64 {
	if d == DirectionDown {
		return -1
	}
	return 1
}

// Anchor selects the fixed edge for the scale component of a Transform.
type Anchor uint8

const (
	AnchorCenter Anchor = iota
	AnchorTop
	AnchorBottom
)

// Transform is the instantaneous visual transform of a transitioning glyph.
// OffsetY is in abstract units where positive means toward the travel
// direction; the render adapter maps it into screen space. Scale is a uniform
// factor anchored at Anchor. Blur is a radius in the same units as OffsetY.
// Rendered output should be clipped to the glyph's bounding box so blur and
// scale do not bleed into neighbors.
type Transform struct {
	OffsetY float64
	Scale   float64
	Blur    float64
	Anchor  Anchor
}

// Identity is the at-rest transform: no offset, unit scale, no blur.
var Identity = Transform{Scale: 1}

// Roll computes the directional transition transform for a glyph at the given
// progress. factor runs in [0, maxFactor]; 0 is rest. Below the recoil
// threshold (0.15 × maxFactor) the glyph slides in the travel direction; past
// it the offset reverses sign and overshoots rest, producing the spring-back
// look. Scale shrink and blur only accumulate past the threshold and with
// factor respectively, anchored at the top edge for up and the bottom edge
// for down.
//
// A maxFactor of 0 yields Identity; the scale ratio would otherwise divide
// by zero.
func Roll(dir Direction, factor, maxFactor float64) Transform {
	if maxFactor == 0 {
		return Identity
	}

	recoil := recoilRatio * maxFactor
	modulated := factor - recoil
	if modulated < 0 {
		modulated = 0
	}

	sign := dir.sign()
	var offset float64
	if factor < recoil {
		offset = sign * factor
	} else {
		offset = -sign*factor + sign*2*recoil
	}

	anchor := AnchorTop
	if dir == DirectionDown {
		anchor = AnchorBottom
	}

	return Transform{
		OffsetY: offset,
		Scale:   1 - modulated/(1.5*maxFactor),
		Blur:    factor / 3,
		Anchor:  anchor,
	}
}

// Plain computes the non-directional transition transform used for
// punctuation and symbol glyphs (separators, signs, currency marks): a
// centered scale with no slide and no blur, so punctuation never lurches
// when neighboring digits roll.
func Plain(factor, maxFactor float64) Transform {
	if maxFactor == 0 {
		return Identity
	}

	modulated := factor - recoilRatio*maxFactor
	if modulated < 0 {
		modulated = 0
	}

	return Transform{
		Scale:  1 - modulated/(1.5*maxFactor),
		Anchor: AnchorCenter,
	}
}

// Fade returns the opacity for a glyph at the given progress: 1 at rest
// (factor 0) falling linearly to 0 at maxFactor. It is the outer fade wrapper
// combined with Roll or Plain; hosts apply it to the glyph's alpha. A
// maxFactor of 0 yields 1.
func Fade(factor, maxFactor float64) float64 {
	if maxFactor == 0 {
		return 1
	}
	a := 1 - factor/maxFactor
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
