package animation

import (
	"time"

	"fyne.io/fyne/v2"
)

const (
	// DurationNormal is used for user-visible transitions.
	DurationNormal = 400 * time.Millisecond
	// DurationInstant snaps directly to the target style.
	DurationInstant = time.Duration(0)
)

var (
	// CurveLinear paces morphs and the spinner rotation.
	CurveLinear fyne.AnimationCurve = fyne.AnimationLinear
	// CurveDecelerate is 1-(1-t)^2 and paces the spinner sweep.
	CurveDecelerate fyne.AnimationCurve = fyne.AnimationEaseOut
)

// Duration picks the preset for an animated or instant transition.
func Duration(animate bool, normal time.Duration) time.Duration {
	if !animate {
		return DurationInstant
	}
	if normal <= 0 {
		return DurationNormal
	}
	return normal
}
