// Package odometer animates numeric value changes one glyph at a time, the
// way a mechanical counter rolls: when a displayed value changes, only the
// digits that actually differ slide, scale, blur, and fade into place, while
// unchanged digits hold perfectly still.
//
// # Quick start
//
// The simplest way in is [Display], a retained component. Set values as they
// arrive, call [Display.Update] once per frame, and draw the runs it emits:
//
//	display := odometer.NewDisplay(odometer.Integer())
//	display.SetValue(99)
//	// later, on a value change:
//	display.SetValue(100)
//	// each frame:
//	display.Update(dt)
//	for _, run := range display.Runs() {
//		op := odometer.DrawOptions(run.Transform, run.Alpha, cellW, cellH)
//		// draw run.Symbol's image with op, clipped to its cell
//	}
//
// # How glyphs are diffed
//
// [Reconcile] compares the old and new formatted strings right-aligned, from
// the least-significant character: a glyph that kept its symbol and its
// position from the end keeps its identity and is never re-animated, so
// "99"→"100" only mints a fresh leading "1" around the rolling digits, and
// 3.14→3.24 leaves the separator and the unchanged digits alone. Digits get
// the directional [Roll] transition (up when the value grew, down when it
// shrank); punctuation gets the stationary [Plain] fade/scale.
//
// # Bring your own animation loop
//
// The geometry is pure: [Roll], [Plain], and [Fade] map a progress factor in
// [0, maxFactor] to an instantaneous transform, and something external moves
// the factor over time. [Display] uses a [TweenDriver] ([gween]) by default;
// [SpringDriver] ([harmonica]) trades fixed durations for damped-spring
// momentum. Hosts with their own animation system can skip Display entirely
// and drive the factor themselves — factor 0 is rest, enters play
// maxFactor→0, exits play 0→maxFactor.
//
// The package is single-threaded by design, like the toolkit it serves:
// reconciliation and geometry run synchronously inside the host's update
// callback.
//
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package odometer
