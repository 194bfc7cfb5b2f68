package progress

import (
	"fmt"
	"image/color"
	"time"

	"cpbutton/internal/core/animation"
	"cpbutton/internal/core/model"
	"cpbutton/internal/core/spinner"
	"cpbutton/internal/render"

	"github.com/sirupsen/logrus"
)

// Option configures a Machine.
type Option func(*Machine)

// WithLogger replaces the default component logger.
func WithLogger(log *logrus.Entry) Option {
	return func(machine *Machine) {
		if log != nil {
			machine.log = log
		}
	}
}

// SavedState is the record persisted across view recreation.
type SavedState struct {
	Progress      int
	Indeterminate bool
	ForceInstant  bool
}

// Machine owns the button state, the requested progress and the morph in flight.
// All methods must be called from the goroutine driving the frames.
type Machine struct {
	config      model.ButtonConfig
	maxProgress int

	state         State
	progress      int
	applied       int
	indeterminate bool
	instant       bool
	morphing      bool
	recipe        Recipe

	width       float32
	height      float32
	interaction model.Interaction

	engine  *animation.Engine
	spinner *spinner.Spinner

	onMorphStart  func(Recipe)
	onStateChange func(State)

	log *logrus.Entry
}

// NewMachine validates the config and returns an idle machine.
func NewMachine(config model.ButtonConfig, options ...Option) (*Machine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new progress machine: %w", err)
	}

	machine := &Machine{
		config:      config,
		maxProgress: config.MaxProgress,
		state:       StateIdle,
		log:         logrus.WithField("component", "progress"),
	}
	for _, option := range options {
		option(machine)
	}
	machine.engine = animation.New(machine.log.WithField("component", "morph"))
	return machine, nil
}

// OnMorphStart registers a hook fired when a morph begins.
func (machine *Machine) OnMorphStart(handler func(Recipe)) {
	machine.onMorphStart = handler
}

// OnStateChange registers a hook fired when a morph completes and the state is updated.
func (machine *Machine) OnStateChange(handler func(State)) {
	machine.onStateChange = handler
}

// State returns the current state. It only changes when a morph completes.
func (machine *Machine) State() State {
	return machine.state
}

// Progress returns the last requested value, which may still be waiting on a morph.
func (machine *Machine) Progress() int {
	return machine.progress
}

// MaxProgress returns the value treated as success.
func (machine *Machine) MaxProgress() int {
	return machine.maxProgress
}

// SetMaxProgress changes the value treated as success.
func (machine *Machine) SetMaxProgress(maxProgress int) error {
	if maxProgress <= 0 {
		return fmt.Errorf("max progress %d: %w", maxProgress, model.ErrInvalidConfig)
	}
	machine.maxProgress = maxProgress
	return nil
}

// Morphing reports whether a morph is in flight.
func (machine *Machine) Morphing() bool {
	return machine.morphing
}

// Config returns the config the machine was built with.
func (machine *Machine) Config() model.ButtonConfig {
	return machine.config
}

// SetProgress requests a progress value.
//
// While a morph is in flight the value is recorded and replayed once the
// morph completes; only the latest request survives. Before the size is
// known the value is recorded and applied by OnSize.
func (machine *Machine) SetProgress(value int, animate bool) {
	machine.progress = value
	machine.instant = !animate

	if machine.morphing {
		machine.log.WithFields(logrus.Fields{
			"progress": value,
			"morph":    machine.recipe.Name(),
		}).Debug("progress deferred until morph completes")
		return
	}
	if machine.width <= 0 {
		return
	}

	previous := machine.applied
	machine.applied = value
	class := Classify(value, machine.maxProgress)
	decision := Decide(machine.state, class)
	if rejected(decision, class) {
		// A rejected value never becomes the progress of the settled state.
		machine.progress = previous
		machine.applied = previous
		machine.log.WithFields(logrus.Fields{
			"state":    machine.state,
			"progress": value,
		}).Debug("transition ignored")
	}
	if decision.Action == ActionMorph {
		machine.morph(decision.Recipe)
	}
	machine.syncSpinner()
}

func rejected(decision Decision, class Class) bool {
	return decision.Action == ActionIgnore || class == ClassNone
}

// IsIndeterminateProgressMode reports which indicator is drawn in the progress state.
func (machine *Machine) IsIndeterminateProgressMode() bool {
	return machine.indeterminate
}

// SetIndeterminateProgressMode switches between the determinate arc and the spinner.
// It never changes the state.
func (machine *Machine) SetIndeterminateProgressMode(indeterminate bool) {
	machine.indeterminate = indeterminate
	if !indeterminate {
		machine.dropSpinner()
	}
	machine.syncSpinner()
}

// OnSize records the laid-out size and re-applies the progress without animation.
// During a morph only the size is stored; the completion handler uses it.
func (machine *Machine) OnSize(width, height float32) {
	if width == machine.width && height == machine.height {
		return
	}
	machine.width = width
	machine.height = height
	if machine.morphing {
		return
	}
	machine.SetProgress(machine.progress, false)
}

// Size returns the last laid-out size.
func (machine *Machine) Size() (width, height float32) {
	return machine.width, machine.height
}

// SetInteraction selects the palette variant used at rest.
func (machine *Machine) SetInteraction(interaction model.Interaction) {
	machine.interaction = interaction
}

// SetPalette replaces the colours of a settled state at runtime.
// The progress state is drawn from the indicator colours and has no palette.
func (machine *Machine) SetPalette(state State, palette model.Palette) error {
	if err := palette.Validate(); err != nil {
		return fmt.Errorf("palette %s: %w", state, err)
	}
	switch state {
	case StateIdle:
		machine.config.Idle = palette
	case StateComplete:
		machine.config.Complete = palette
	case StateError:
		machine.config.Error = palette
	default:
		return fmt.Errorf("palette %s: %w", state, model.ErrInvalidConfig)
	}
	return nil
}

// Save captures the progress and mode. Restoring always snaps.
func (machine *Machine) Save() SavedState {
	return SavedState{
		Progress:      machine.settledProgress(),
		Indeterminate: machine.indeterminate,
		ForceInstant:  true,
	}
}

// Restore re-applies a saved record without replaying any transition.
func (machine *Machine) Restore(saved SavedState) {
	machine.SetIndeterminateProgressMode(saved.Indeterminate)
	machine.SetProgress(saved.Progress, false)
}

// Destroy releases the spinner.
func (machine *Machine) Destroy() {
	machine.dropSpinner()
}

// Animating reports whether frames are needed.
func (machine *Machine) Animating() bool {
	return machine.morphing || (machine.spinner != nil && machine.spinner.Running())
}

// Advance moves the morph or the spinner forward.
func (machine *Machine) Advance(delta time.Duration) bool {
	advanced := false
	if machine.morphing {
		advanced = machine.engine.Advance(delta)
	}
	if machine.spinner != nil && machine.spinner.Running() {
		advanced = machine.spinner.Advance(delta) || advanced
	}
	return advanced
}

// Background returns the style of the button shape at this frame.
func (machine *Machine) Background() model.Style {
	if machine.morphing {
		return machine.engine.Current()
	}
	return machine.restStyle(machine.state)
}

// Render paints the background and, once settled in the progress state, the indicator.
func (machine *Machine) Render(surface render.Surface) {
	if machine.width <= 0 {
		return
	}
	style := machine.Background()
	left := (machine.width-style.Width)/2 + style.Padding
	top := (machine.height-style.Height)/2 + style.Padding
	bounds := render.Rect{
		Left:   left,
		Top:    top,
		Right:  left + style.Width - style.Padding*2,
		Bottom: top + style.Height - style.Padding*2,
	}
	surface.DrawRoundRect(bounds, style.CornerRadius, style.BackgroundColor, render.Stroke{
		Color: style.StrokeColor,
		Width: machine.config.StrokeWidth,
	})

	if !machine.indicatorVisible() {
		return
	}
	if machine.indeterminate {
		if machine.spinner != nil {
			machine.spinner.Render(surface)
		}
		return
	}
	render.DrawDeterminate(surface, machine.indicatorBounds(), machine.progress, machine.maxProgress, render.Stroke{
		Color: machine.config.IndicatorColor,
		Width: machine.config.StrokeWidth,
	})
}

// Spinner exposes the indeterminate phase owner, nil until first shown.
func (machine *Machine) Spinner() *spinner.Spinner {
	return machine.spinner
}

// settledProgress is the value the machine will rest on once the morph in
// flight and its deferred request have been applied.
func (machine *Machine) settledProgress() int {
	if !machine.morphing || machine.progress == machine.applied {
		return machine.progress
	}
	class := Classify(machine.progress, machine.maxProgress)
	if rejected(Decide(machine.recipe.To, class), class) {
		return machine.applied
	}
	return machine.progress
}

func (machine *Machine) indicatorVisible() bool {
	return machine.progress > 0 && machine.state == StateProgress && !machine.morphing
}

func (machine *Machine) indicatorBounds() render.Rect {
	return render.IndicatorBounds(machine.width, machine.height, machine.config.PaddingProgress)
}

func (machine *Machine) morph(recipe Recipe) {
	from, to := machine.endpoints(recipe)
	duration := animation.Duration(!machine.instant, machine.config.MorphDuration)
	machine.instant = false
	machine.morphing = true
	machine.recipe = recipe

	if machine.spinner != nil {
		machine.spinner.Stop()
	}
	if machine.onMorphStart != nil {
		machine.onMorphStart(recipe)
	}

	machine.engine.Start(animation.Run{
		Name:     recipe.Name(),
		From:     from,
		To:       to,
		Duration: duration,
		Curve:    animation.CurveLinear,
	}, func() {
		machine.finish(recipe)
	})
}

// finish is the single completion handler for every recipe.
func (machine *Machine) finish(recipe Recipe) {
	machine.morphing = false
	switch recipe.To {
	case StateProgress:
		machine.state = StateProgress
	case StateComplete, StateError, StateIdle:
		machine.state = recipe.To
		machine.dropSpinner()
	}
	machine.log.WithFields(logrus.Fields{
		"morph":    recipe.Name(),
		"state":    machine.state,
		"progress": machine.progress,
	}).Debug("state changed")

	if machine.onStateChange != nil {
		machine.onStateChange(machine.state)
	}

	if machine.progress != machine.applied {
		machine.SetProgress(machine.progress, !machine.instant)
		return
	}
	machine.syncSpinner()
}

// endpoints always use the normal variants; pressed or focused colours only
// apply at rest.
func (machine *Machine) endpoints(recipe Recipe) (model.Style, model.Style) {
	from := machine.style(recipe.From, model.Interaction{})
	if recipe.From == StateProgress {
		from = machine.progressStyle(machine.config.IndicatorColor)
	}
	return from, machine.style(recipe.To, model.Interaction{})
}

func (machine *Machine) restStyle(state State) model.Style {
	return machine.style(state, machine.interaction)
}

func (machine *Machine) style(state State, interaction model.Interaction) model.Style {
	var palette model.Palette
	switch state {
	case StateProgress:
		return machine.progressStyle(machine.config.IndicatorBackgroundColor)
	case StateComplete:
		palette = machine.config.Complete
	case StateError:
		palette = machine.config.Error
	default:
		palette = machine.config.Idle
	}
	fill := palette.Resolve(interaction)
	return model.Style{
		BackgroundColor: fill,
		StrokeColor:     fill,
		CornerRadius:    machine.config.CornerRadius,
		Width:           machine.width,
		Height:          machine.height,
	}
}

// progressStyle is the circle the button collapses into while in progress.
func (machine *Machine) progressStyle(stroke color.NRGBA) model.Style {
	return model.Style{
		BackgroundColor: machine.config.ProgressColor,
		StrokeColor:     stroke,
		CornerRadius:    machine.height,
		Width:           machine.height,
		Height:          machine.height,
		Padding:         machine.config.PaddingProgress,
	}
}

// syncSpinner creates the spinner the first time the indeterminate
// indicator becomes visible and pauses it whenever it is hidden.
func (machine *Machine) syncSpinner() {
	if !machine.indeterminate || !machine.indicatorVisible() {
		if machine.spinner != nil {
			machine.spinner.Stop()
		}
		return
	}
	if machine.spinner == nil {
		machine.spinner = spinner.New(machine.config.IndicatorColor, machine.config.StrokeWidth)
	}
	machine.spinner.SetBounds(machine.indicatorBounds())
	machine.spinner.Start()
}

func (machine *Machine) dropSpinner() {
	if machine.spinner == nil {
		return
	}
	machine.spinner.Stop()
	machine.spinner = nil
}
