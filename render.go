package odometer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawOptions converts a glyph run's transform and opacity into Ebitengine
// draw options for a glyph image of the given size. The scale anchors at the
// transform's anchor edge (horizontally always centered), OffsetY maps into
// screen space (positive offset = upward travel = negative screen Y), and
// alpha goes into the color scale.
//
// The caller should draw into a per-glyph cell (e.g. a SubImage of the
// destination) so scale and blur stay clipped to the glyph's bounding box.
func DrawOptions(t Transform, alpha, w, h float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear

	var pivotY float64
	switch t.Anchor {
	case AnchorTop:
		pivotY = 0
	case AnchorBottom:
		pivotY = h
	case AnchorCenter:
		pivotY = h / 2
	}

	op.GeoM.Translate(-w/2, -pivotY)
	op.GeoM.Scale(t.Scale, t.Scale)
	op.GeoM.Translate(w/2, pivotY)
	op.GeoM.Translate(0, -t.OffsetY)

	op.ColorScale.ScaleAlpha(float32(alpha))
	return op
}

// BlurFilter applies a Kawase iterative blur using downscale/upscale passes.
// No shader needed — bilinear filtering during DrawImage does the work. One
// filter can be shared across every glyph of a display; its temp chain is
// reused between calls. Not safe for concurrent use.
type BlurFilter struct {
	temps []*ebiten.Image
	imgOp ebiten.DrawImageOptions
}

// Apply renders src into dst blurred by the given radius (Transform.Blur).
// A radius under one pixel is a plain copy.
func (f *BlurFilter) Apply(src, dst *ebiten.Image, radius float64) {
	if radius < 1 {
		f.imgOp.GeoM.Reset()
		f.imgOp.ColorScale.Reset()
		f.imgOp.Filter = ebiten.FilterNearest
		dst.DrawImage(src, &f.imgOp)
		return
	}

	// Number of iterations: log2(radius), minimum 1.
	passes := int(math.Ceil(math.Log2(radius)))
	if passes < 1 {
		passes = 1
	}

	srcBounds := src.Bounds()
	w, h := srcBounds.Dx(), srcBounds.Dy()

	// Grow or shrink the temp chain to match the pass count; the downscale
	// chain is reused on the way back up.
	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
			f.temps[i] = nil
		}
	}
	f.temps = f.temps[:passes]

	op := &f.imgOp

	// Downscale passes: each half-size.
	current := src
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		if f.temps[i] == nil || f.temps[i].Bounds().Dx() != w || f.temps[i].Bounds().Dy() != h {
			if f.temps[i] != nil {
				f.temps[i].Deallocate()
			}
			f.temps[i] = ebiten.NewImage(w, h)
		} else {
			f.temps[i].Clear()
		}
		op.GeoM.Reset()
		op.ColorScale.Reset()
		sw := float64(current.Bounds().Dx())
		sh := float64(current.Bounds().Dy())
		op.GeoM.Scale(float64(w)/sw, float64(h)/sh)
		op.Filter = ebiten.FilterLinear
		f.temps[i].DrawImage(current, op)
		current = f.temps[i]
	}

	// Upscale passes: draw each back up.
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		op.GeoM.Reset()
		op.ColorScale.Reset()
		sw := float64(current.Bounds().Dx())
		sh := float64(current.Bounds().Dy())
		tw := float64(f.temps[i].Bounds().Dx())
		th := float64(f.temps[i].Bounds().Dy())
		op.GeoM.Scale(tw/sw, th/sh)
		op.Filter = ebiten.FilterLinear
		f.temps[i].DrawImage(current, op)
		current = f.temps[i]
	}

	// Final upscale to dst.
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sw := float64(current.Bounds().Dx())
	sh := float64(current.Bounds().Dy())
	tw := float64(dst.Bounds().Dx())
	th := float64(dst.Bounds().Dy())
	op.GeoM.Scale(tw/sw, th/sh)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(current, op)
}

// Dispose deallocates the filter's temp chain.
func (f *BlurFilter) Dispose() {
	for i, t := range f.temps {
		if t != nil {
			t.Deallocate()
			f.temps[i] = nil
		}
	}
	f.temps = nil
}
