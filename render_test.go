package odometer

import (
	"math"
	"testing"
)

const (
	cellW = 20.0
	cellH = 32.0
)

func TestDrawOptionsIdentityTransform(t *testing.T) {
	op := DrawOptions(Identity, 1, cellW, cellH)

	for _, p := range [][2]float64{{0, 0}, {cellW, cellH}, {cellW / 2, cellH / 2}} {
		x, y := op.GeoM.Apply(p[0], p[1])
		if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
			t.Errorf("identity moved (%v,%v) to (%v,%v)", p[0], p[1], x, y)
		}
	}
}

func TestDrawOptionsTopAnchorPinsTopEdge(t *testing.T) {
	op := DrawOptions(Transform{Scale: 0.5, Anchor: AnchorTop}, 1, cellW, cellH)

	// Top edge stays put, bottom edge moves toward it.
	if _, y := op.GeoM.Apply(cellW/2, 0); math.Abs(y) > 1e-9 {
		t.Errorf("top edge moved to y=%v", y)
	}
	if _, y := op.GeoM.Apply(cellW/2, cellH); math.Abs(y-cellH/2) > 1e-9 {
		t.Errorf("bottom edge = %v, want %v", y, cellH/2)
	}
}

func TestDrawOptionsBottomAnchorPinsBottomEdge(t *testing.T) {
	op := DrawOptions(Transform{Scale: 0.5, Anchor: AnchorBottom}, 1, cellW, cellH)

	if _, y := op.GeoM.Apply(cellW/2, cellH); math.Abs(y-cellH) > 1e-9 {
		t.Errorf("bottom edge moved to y=%v", y)
	}
	if _, y := op.GeoM.Apply(cellW/2, 0); math.Abs(y-cellH/2) > 1e-9 {
		t.Errorf("top edge = %v, want %v", y, cellH/2)
	}
}

func TestDrawOptionsCenterAnchorPinsCenter(t *testing.T) {
	op := DrawOptions(Transform{Scale: 0.5, Anchor: AnchorCenter}, 1, cellW, cellH)

	x, y := op.GeoM.Apply(cellW/2, cellH/2)
	if math.Abs(x-cellW/2) > 1e-9 || math.Abs(y-cellH/2) > 1e-9 {
		t.Errorf("center moved to (%v,%v)", x, y)
	}
}

func TestDrawOptionsScaleIsHorizontallyCentered(t *testing.T) {
	op := DrawOptions(Transform{Scale: 0.5, Anchor: AnchorTop}, 1, cellW, cellH)

	if x, _ := op.GeoM.Apply(cellW/2, 0); math.Abs(x-cellW/2) > 1e-9 {
		t.Errorf("horizontal center moved to x=%v", x)
	}
	if x, _ := op.GeoM.Apply(0, 0); math.Abs(x-cellW/4) > 1e-9 {
		t.Errorf("left edge = %v, want %v", x, cellW/4)
	}
}

func TestDrawOptionsOffsetMapsToScreenSpace(t *testing.T) {
	// Positive offset is travel toward "up", which is negative Y on screen.
	op := DrawOptions(Transform{OffsetY: 5, Scale: 1}, 1, cellW, cellH)
	if _, y := op.GeoM.Apply(0, 0); math.Abs(y+5) > 1e-9 {
		t.Errorf("offset +5 mapped to y=%v, want -5", y)
	}

	op = DrawOptions(Transform{OffsetY: -5, Scale: 1}, 1, cellW, cellH)
	if _, y := op.GeoM.Apply(0, 0); math.Abs(y-5) > 1e-9 {
		t.Errorf("offset -5 mapped to y=%v, want +5", y)
	}
}

func TestDrawOptionsComposesRollGeometry(t *testing.T) {
	// A mid-transition upward roll: shrunk about the top edge and displaced.
	tr := Roll(DirectionUp, 10, 20)
	op := DrawOptions(tr, 0.5, cellW, cellH)

	// Top edge y should be exactly the negated offset (anchor pins it).
	if _, y := op.GeoM.Apply(cellW/2, 0); math.Abs(y+tr.OffsetY) > 1e-9 {
		t.Errorf("anchored edge y = %v, want %v", y, -tr.OffsetY)
	}
	// Bottom edge reflects the scale.
	if _, y := op.GeoM.Apply(cellW/2, cellH); math.Abs(y-(cellH*tr.Scale-tr.OffsetY)) > 1e-9 {
		t.Errorf("scaled bottom edge y = %v", y)
	}
}
