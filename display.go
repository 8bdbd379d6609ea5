package odometer

import "github.com/tanema/gween/ease"

// Phase is a glyph's transition lifecycle stage.
type Phase uint8

const (
	PhaseSettled Phase = iota
	PhaseEntering
	PhaseExiting
)

// GlyphRun is one renderable text run emitted by a Display: a single glyph
// with its live transform and opacity. The host draws each run individually
// (e.g. via DrawOptions), clipped to the glyph's box. Exiting runs share an
// Index with their replacement and are drawn in the same column; an Index of
// -1 means the column no longer exists and the run renders past the current
// right edge.
//
// Transform and Alpha are precomputed from the run's Direction and Factor;
// hosts driving their own animation can ignore them and call Roll, Plain, and
// Fade with a live factor instead.
type GlyphRun struct {
	ID        uint64
	Symbol    string
	Numeric   bool
	Index     int
	Phase     Phase
	Direction Direction
	Factor    float64
	Transform Transform
	Alpha     float64
}

// slot is a live (settled or entering) glyph. driver is nil once settled; the
// transition state is discarded when the enter animation completes.
type slot struct {
	glyph  Glyph
	dir    Direction
	driver Driver
	factor float64
}

// exitSlot is a removed glyph playing its exit animation.
type exitSlot struct {
	glyph  Glyph
	index  int
	dir    Direction
	driver Driver
	factor float64
}

// Display is a retained rolling-number component: set a value, pump Update
// each frame, and draw the runs it emits. Digits that change roll in the
// direction of the value change; digits that keep their symbol and
// end-relative position are left alone; punctuation fades and scales but
// never slides.
//
// There is no global animation manager — the host calls Update itself. A
// value set while a previous transition is still running supersedes it: the
// new value reconciles against the latest reconciled glyph state, in-flight
// enters of replaced glyphs are converted to exits from their current
// progress, and nothing is queued.
//
// Display is not safe for concurrent use; like the rest of the package it
// expects the host's single update/draw thread.
type Display struct {
	// Rule formats values for display. Required.
	Rule FormatRule
	// MaxFactor is the peak transition factor. Zero disables the visual
	// transform entirely (glyphs still swap, flat and unanimated); use
	// NewDisplay to get the default of DefaultMaxFactor.
	MaxFactor float64
	// NewDriver builds the factor driver for each transition.
	NewDriver DriverFactory

	state State
	slots []slot
	exits []exitSlot
	runs  []GlyphRun // reused output buffer
}

// NewDisplay creates a Display with the default peak factor and a 0.35s
// ease-out tween driver.
func NewDisplay(rule FormatRule) *Display {
	return &Display{
		Rule:      rule,
		MaxFactor: DefaultMaxFactor,
		NewDriver: TweenFactory(0.35, ease.OutQuad),
	}
}

// Value returns the last value set. ok is false before the first SetValue.
func (d *Display) Value() (v float64, ok bool) { return d.state.Value() }

// State returns the current reconciler state, for hosts that persist it
// externally.
func (d *Display) State() State { return d.state }

// SetValue reconciles the display against a new value. Unchanged glyphs keep
// their identity and any in-flight animation; changed glyphs enter with the
// directional transition and their predecessors exit. On the first call all
// glyphs appear settled at rest with no transition.
func (d *Display) SetValue(value float64) {
	_, hadValue := d.state.Value()
	prevSlots := d.slots

	var up Update
	d.state, up = Reconcile(d.state, value, d.Rule)

	next := make([]slot, len(up.Glyphs))
	fresh := up.Fresh
	for i, g := range up.Glyphs {
		if len(fresh) > 0 && fresh[0] == i {
			fresh = fresh[1:]
			s := slot{glyph: g, dir: up.Direction}
			if hadValue {
				s.factor = d.MaxFactor
				s.driver = d.NewDriver(d.MaxFactor, 0)
			}
			next[i] = s
			continue
		}
		// Reused identity: carry the slot over, animation and all.
		next[i] = prevSlot(prevSlots, g.ID)
	}
	d.slots = next

	for _, rm := range up.Removed {
		from := 0.0
		if s := prevSlot(prevSlots, rm.Glyph.ID); s.glyph.ID == rm.Glyph.ID {
			// A superseded enter exits from wherever it got to.
			from = s.factor
		}
		d.exits = append(d.exits, exitSlot{
			glyph:  rm.Glyph,
			index:  rm.Index,
			dir:    up.Direction,
			driver: d.NewDriver(from, d.MaxFactor),
			factor: from,
		})
	}
}

// prevSlot finds the slot holding the glyph with the given identity. Returns
// the zero slot when absent. Sequences are a handful of glyphs; linear scan.
func prevSlot(slots []slot, id uint64) slot {
	for _, s := range slots {
		if s.glyph.ID == id {
			return s
		}
	}
	return slot{}
}

// Update advances all running transitions by dt seconds. Enter transitions
// settle at rest and drop their driver; finished exits expire and stop being
// emitted by Runs.
func (d *Display) Update(dt float32) {
	for i := range d.slots {
		s := &d.slots[i]
		if s.driver == nil {
			continue
		}
		var done bool
		s.factor, done = s.driver.Update(dt)
		if done {
			s.driver = nil
			s.factor = 0
		}
	}

	live := d.exits[:0]
	for i := range d.exits {
		e := &d.exits[i]
		var done bool
		e.factor, done = e.driver.Update(dt)
		if !done {
			live = append(live, *e)
		}
	}
	d.exits = live
}

// Animating reports whether any transition is still running.
func (d *Display) Animating() bool {
	if len(d.exits) > 0 {
		return true
	}
	for _, s := range d.slots {
		if s.driver != nil {
			return true
		}
	}
	return false
}

// Runs returns the renderable glyph runs in display order, exiting runs
// last. The returned slice is reused by the next call to Runs.
func (d *Display) Runs() []GlyphRun {
	d.runs = d.runs[:0]

	for i, s := range d.slots {
		run := GlyphRun{
			ID:        s.glyph.ID,
			Symbol:    s.glyph.Symbol,
			Numeric:   s.glyph.Numeric,
			Index:     i,
			Direction: s.dir,
			Transform: Identity,
			Alpha:     1,
		}
		if s.driver != nil {
			run.Phase = PhaseEntering
			run.Factor = s.factor
			run.Transform = d.transform(s.glyph, s.dir, s.factor)
			run.Alpha = Fade(s.factor, d.MaxFactor)
		}
		d.runs = append(d.runs, run)
	}

	for _, e := range d.exits {
		d.runs = append(d.runs, GlyphRun{
			ID:        e.glyph.ID,
			Symbol:    e.glyph.Symbol,
			Numeric:   e.glyph.Numeric,
			Index:     e.index,
			Phase:     PhaseExiting,
			Direction: e.dir,
			Factor:    e.factor,
			Transform: d.transform(e.glyph, e.dir, e.factor),
			Alpha:     Fade(e.factor, d.MaxFactor),
		})
	}

	return d.runs
}

// transform picks the directional roll for digits and the plain fade/scale
// for punctuation and symbols.
func (d *Display) transform(g Glyph, dir Direction, factor float64) Transform {
	if g.Numeric {
		return Roll(dir, factor, d.MaxFactor)
	}
	return Plain(factor, d.MaxFactor)
}
