package animation

import (
	"time"

	"cpbutton/internal/core/model"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"
)

// Tickable is advanced by the host frame driver with the wall-clock time since the last frame.
type Tickable interface {
	Advance(delta time.Duration) bool
}

// Run describes a single morph between two styles.
type Run struct {
	Name     string
	From     model.Style
	To       model.Style
	Duration time.Duration
	Curve    fyne.AnimationCurve
}

// Engine interpolates one morph at a time and reports its completion.
// It is driven from a single goroutine and holds no locks.
type Engine struct {
	run     Run
	elapsed time.Duration
	current model.Style
	active  bool
	onDone  func()
	log     *logrus.Entry
}

// New creates an idle morph engine.
func New(log *logrus.Entry) *Engine {
	if log == nil {
		log = logrus.WithField("component", "morph")
	}
	return &Engine{log: log}
}

// Start begins a morph. A non-positive duration completes before Start returns.
// Starting while another morph is active is refused.
func (engine *Engine) Start(run Run, onDone func()) bool {
	if engine.active {
		engine.log.WithFields(logrus.Fields{
			"active":    engine.run.Name,
			"requested": run.Name,
		}).Warn("morph already in flight")
		return false
	}
	if run.Curve == nil {
		run.Curve = fyne.AnimationLinear
	}

	engine.run = run
	engine.elapsed = 0
	engine.current = run.From
	engine.active = true
	engine.onDone = onDone
	engine.log.WithFields(logrus.Fields{
		"morph":    run.Name,
		"duration": run.Duration,
	}).Debug("morph started")

	if run.Duration <= 0 {
		engine.finish()
	}
	return true
}

// Advance moves the active morph forward and returns whether a frame was produced.
func (engine *Engine) Advance(delta time.Duration) bool {
	if !engine.active {
		return false
	}
	if delta > 0 {
		engine.elapsed += delta
	}
	if engine.elapsed >= engine.run.Duration {
		engine.finish()
		return true
	}

	fraction := float32(engine.elapsed) / float32(engine.run.Duration)
	engine.current = Interpolate(engine.run.From, engine.run.To, engine.run.Curve(fraction))
	return true
}

// Active reports whether a morph is in flight.
func (engine *Engine) Active() bool {
	return engine.active
}

// Current returns the latest interpolated style.
func (engine *Engine) Current() model.Style {
	return engine.current
}

// Name returns the name of the last started morph.
func (engine *Engine) Name() string {
	return engine.run.Name
}

func (engine *Engine) finish() {
	engine.current = engine.run.To
	engine.active = false
	done := engine.onDone
	engine.onDone = nil
	engine.log.WithField("morph", engine.run.Name).Debug("morph finished")
	if done != nil {
		done()
	}
}
