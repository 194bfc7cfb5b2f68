package button

import (
	"time"

	"fyne.io/fyne/v2"
)

// frameDriver turns a repeating fyne.Animation into wall-clock deltas.
type frameDriver struct {
	animation *fyne.Animation
	running   bool
	last      time.Time
	now       func() time.Time
	step      func(time.Duration)
}

func newFrameDriver(step func(time.Duration)) *frameDriver {
	driver := &frameDriver{
		now:  time.Now,
		step: step,
	}
	driver.animation = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Curve:       fyne.AnimationLinear,
		Tick:        driver.tick,
	}
	return driver
}

func (driver *frameDriver) Start() {
	if driver.running {
		return
	}
	driver.running = true
	driver.last = driver.now()
	driver.animation.Start()
}

func (driver *frameDriver) Stop() {
	if !driver.running {
		return
	}
	driver.running = false
	driver.animation.Stop()
}

func (driver *frameDriver) Running() bool {
	return driver.running
}

func (driver *frameDriver) tick(float32) {
	if !driver.running {
		return
	}
	now := driver.now()
	delta := now.Sub(driver.last)
	driver.last = now
	if delta < 0 {
		delta = 0
	}
	driver.step(delta)
}
