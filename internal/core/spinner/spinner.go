// Package spinner animates the indeterminate progress arc.
//
// Two periodic animators run side by side: the rotation sweeps the global
// angle through a full turn every AnglePeriod, while the sweep animator grows
// the arc from zero to MaxSweep every SweepPeriod with a decelerating curve.
// Each sweep period flips the spinner between appearing (the arc head runs
// ahead) and disappearing (the arc tail catches up).
package spinner

import (
	"image/color"
	"math"
	"time"

	"cpbutton/internal/core/animation"
	"cpbutton/internal/render"
)

const (
	// MinSweepAngle is the shortest arc ever drawn.
	MinSweepAngle float32 = 30
	// MaxSweep is the end value of the sweep animator.
	MaxSweep = 360 - 2*MinSweepAngle

	AnglePeriod = 2000 * time.Millisecond
	SweepPeriod = 600 * time.Millisecond
)

// Phase is the animated state read by the draw rule.
type Phase struct {
	GlobalAngle       float32
	GlobalAngleOffset float32
	SweepAngle        float32
	Appearing         bool
}

// Spinner owns a phase and the two animators driving it.
type Spinner struct {
	phase        Phase
	angleElapsed time.Duration
	sweepElapsed time.Duration
	running      bool

	bounds render.Rect
	stroke render.Stroke
}

// New creates a stopped spinner painting with the given colour and stroke width.
func New(indicator color.NRGBA, strokeWidth float32) *Spinner {
	return &Spinner{
		stroke: render.Stroke{Color: indicator, Width: strokeWidth},
	}
}

// SetBounds sets the box the arc is inscribed in.
func (spinner *Spinner) SetBounds(bounds render.Rect) {
	inset := spinner.stroke.Width/2 + 0.5
	spinner.bounds = bounds.Inset(inset)
}

// Bounds returns the inset drawing box.
func (spinner *Spinner) Bounds() render.Rect {
	return spinner.bounds
}

// Start launches both animators. Calling it while running does nothing.
func (spinner *Spinner) Start() {
	if spinner.running {
		return
	}
	spinner.running = true
	spinner.angleElapsed = 0
	spinner.sweepElapsed = 0
	spinner.phase.GlobalAngle = 0
	spinner.phase.SweepAngle = 0
}

// Stop halts both animators and keeps the last phase. Calling it while stopped does nothing.
func (spinner *Spinner) Stop() {
	if !spinner.running {
		return
	}
	spinner.running = false
}

// Running reports whether the animators are active.
func (spinner *Spinner) Running() bool {
	return spinner.running
}

// Phase returns a copy of the current phase.
func (spinner *Spinner) Phase() Phase {
	return spinner.phase
}

// Advance moves both animators forward by delta.
func (spinner *Spinner) Advance(delta time.Duration) bool {
	if !spinner.running || delta <= 0 {
		return false
	}

	spinner.angleElapsed = (spinner.angleElapsed + delta) % AnglePeriod
	angleFraction := float32(spinner.angleElapsed) / float32(AnglePeriod)
	spinner.phase.GlobalAngle = 360 * animation.CurveLinear(angleFraction)

	spinner.sweepElapsed += delta
	for spinner.sweepElapsed >= SweepPeriod {
		spinner.sweepElapsed -= SweepPeriod
		spinner.toggleAppearing()
	}
	sweepFraction := float32(spinner.sweepElapsed) / float32(SweepPeriod)
	spinner.phase.SweepAngle = MaxSweep * animation.CurveDecelerate(sweepFraction)
	return true
}

// Arc applies the draw rule to the current phase.
func (spinner *Spinner) Arc() (startAngle, sweepAngle float32) {
	return Arc(spinner.phase)
}

// Render strokes the current arc.
func (spinner *Spinner) Render(surface render.Surface) {
	start, sweep := spinner.Arc()
	surface.DrawArc(spinner.bounds, start, sweep, spinner.stroke)
}

// Arc computes the start and sweep angle drawn for a phase.
func Arc(phase Phase) (startAngle, sweepAngle float32) {
	startAngle = phase.GlobalAngle - phase.GlobalAngleOffset
	sweepAngle = phase.SweepAngle
	if phase.Appearing {
		return startAngle, sweepAngle + MinSweepAngle
	}
	return startAngle + sweepAngle, 360 - sweepAngle - MinSweepAngle
}

// The offset only moves on entering the appearing half, where it keeps the
// arc head continuous across the restart of the sweep animator.
func (spinner *Spinner) toggleAppearing() {
	spinner.phase.Appearing = !spinner.phase.Appearing
	if spinner.phase.Appearing {
		offset := spinner.phase.GlobalAngleOffset + MinSweepAngle*2
		spinner.phase.GlobalAngleOffset = float32(math.Mod(float64(offset), 360))
	}
}
