package odometer

// State is the reconciler's memory between value changes: the last value and
// the glyph sequence produced for it. It is an explicit reducer state — the
// host keeps it wherever component-local storage lives and passes it back on
// the next call. The zero value means "no previous value" (first render).
//
// State must always be the output of the most recent Reconcile call, never a
// snapshot of an in-flight animation: when a new value supersedes a running
// transition, reconciling against the latest State makes the last write win.
type State struct {
	glyphs []Glyph
	value  float64
	valid  bool
}

// Glyphs returns the current glyph sequence in display order. The returned
// slice MUST NOT be mutated by the caller.
func (s State) Glyphs() []Glyph { return s.glyphs }

// Value returns the last reconciled value. ok is false before the first
// reconciliation.
func (s State) Value() (v float64, ok bool) { return s.value, s.valid }

// Removal records a glyph that left the sequence. Index is the column the
// glyph's replacement occupies in the new sequence, or -1 when the column
// itself disappeared (the string shrank).
type Removal struct {
	Glyph Glyph
	Index int
}

// Update is the render-facing result of one reconciliation.
type Update struct {
	// Glyphs is the full next sequence in display order, one per grapheme
	// of the formatted string.
	Glyphs []Glyph
	// Fresh holds the indices into Glyphs whose identities were newly
	// minted this call; the host plays the enter transition for these.
	Fresh []int
	// Removed holds the previous glyphs with no successor; the host plays
	// their exit transition.
	Removed []Removal
	// Direction is up when the value increased, down otherwise.
	Direction Direction
}

// Reconcile formats value through rule and diffs the result against prev,
// reusing glyph identities for characters that kept their symbol and
// end-relative position, so unchanged digits never re-animate.
//
// The diff is right-aligned: sequences are compared from the
// least-significant end, so digits keep their column when the magnitude grows
// — "9"→"10" rolls the units 9→0 and inserts only the leading "1" into a new
// column, and "1234"→"1334" replaces only the "2". Left-aligned diffing would
// shift every digit and re-animate all of them.
// An empty formatted string is valid: it yields no glyphs and removals for
// every prior glyph.
func Reconcile(prev State, value float64, rule FormatRule) (State, Update) {
	symbols := splitGraphemes(nil, rule.Format(value))

	up := Update{Direction: DirectionDown}
	if !prev.valid || value > prev.value {
		up.Direction = DirectionUp
	}

	if len(symbols) > 0 {
		up.Glyphs = make([]Glyph, len(symbols))
	}

	old := prev.glyphs
	n, m := len(symbols), len(old)

	// Surplus leading glyphs on the old side have no column anymore.
	for j := 0; j < m-n; j++ {
		up.Removed = append(up.Removed, Removal{Glyph: old[j], Index: -1})
	}

	for i := 0; i < n; i++ {
		j := i - n + m // same position counted from the least-significant end
		if prev.valid && j >= 0 && old[j].Symbol == symbols[i] {
			up.Glyphs[i] = old[j]
			continue
		}
		up.Glyphs[i] = newGlyph(symbols[i])
		up.Fresh = append(up.Fresh, i)
		if j >= 0 {
			up.Removed = append(up.Removed, Removal{Glyph: old[j], Index: i})
		}
	}

	next := State{glyphs: up.Glyphs, value: value, valid: true}
	return next, up
}
