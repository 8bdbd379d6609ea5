package odometer

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Driver produces the sequence of factor samples that animates one glyph's
// transition. The core never schedules time itself; the host calls Update
// once per frame with the elapsed seconds, exactly like a TweenGroup.
// After done is reported the driver keeps returning its final factor.
type Driver interface {
	Update(dt float32) (factor float64, done bool)
}

// DriverFactory builds a driver that moves the factor from one value to
// another. Enter transitions run maxFactor→0, exits 0→maxFactor.
type DriverFactory func(from, to float64) Driver

// --- TweenDriver ---

// TweenDriver drives the factor with a fixed-duration gween tween.
type TweenDriver struct {
	tween  *gween.Tween
	factor float64
	done   bool
}

// NewTweenDriver creates a driver that eases the factor from one value to the
// other over duration seconds.
func NewTweenDriver(from, to float64, duration float32, fn ease.TweenFunc) *TweenDriver {
	return &TweenDriver{
		tween:  gween.New(float32(from), float32(to), duration, fn),
		factor: from,
	}
}

// Update advances the tween by dt seconds.
func (d *TweenDriver) Update(dt float32) (float64, bool) {
	if d.done {
		return d.factor, true
	}
	v, finished := d.tween.Update(dt)
	d.factor = float64(v)
	d.done = finished
	return d.factor, d.done
}

// --- SpringDriver ---

// springEpsilon is the position/velocity magnitude below which a spring is
// considered settled and snapped to its target.
const springEpsilon = 1e-3

// SpringDriver drives the factor with a damped harmonic spring instead of a
// fixed-duration tween, for hosts that want the recoil to carry physical
// momentum. The spring integrates at a fixed timestep; Update accumulates dt
// and steps as many times as fit.
type SpringDriver struct {
	spring   harmonica.Spring
	step     float32 // seconds per physics step
	acc      float32
	pos, vel float64
	target   float64
	done     bool
}

// NewSpringDriver creates a spring driver moving the factor from one value to
// the other, integrating at fps steps per second with the given angular
// frequency and damping ratio (damping < 1 overshoots, adding to the recoil).
func NewSpringDriver(from, to float64, fps int, frequency, damping float64) *SpringDriver {
	return &SpringDriver{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		step:   1 / float32(fps),
		pos:    from,
		target: to,
	}
}

// Update advances the spring by dt seconds.
func (d *SpringDriver) Update(dt float32) (float64, bool) {
	if d.done {
		return d.pos, true
	}
	d.acc += dt
	for d.acc >= d.step {
		d.acc -= d.step
		d.pos, d.vel = d.spring.Update(d.pos, d.vel, d.target)
	}
	if math.Abs(d.pos-d.target) < springEpsilon && math.Abs(d.vel) < springEpsilon {
		d.pos = d.target
		d.vel = 0
		d.done = true
	}
	return d.pos, d.done
}

// TweenFactory returns a DriverFactory producing TweenDrivers with the given
// duration and easing. It is the Display default (duration 0.35s, ease.OutQuad).
func TweenFactory(duration float32, fn ease.TweenFunc) DriverFactory {
	return func(from, to float64) Driver {
		return NewTweenDriver(from, to, duration, fn)
	}
}

// SpringFactory returns a DriverFactory producing SpringDrivers with the
// given integration rate, frequency, and damping.
func SpringFactory(fps int, frequency, damping float64) DriverFactory {
	return func(from, to float64) Driver {
		return NewSpringDriver(from, to, fps, frequency, damping)
	}
}
