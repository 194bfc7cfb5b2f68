package button

import (
	"fmt"
	"time"

	"cpbutton/internal/core/model"
	"cpbutton/internal/core/progress"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	_ fyne.Tappable     = (*Button)(nil)
	_ fyne.Disableable  = (*Button)(nil)
	_ desktop.Mouseable = (*Button)(nil)
	_ desktop.Hoverable = (*Button)(nil)
)

// Button is a button that morphs into a circular progress indicator and
// settles into complete or error.
type Button struct {
	widget.BaseWidget

	OnTapped func()

	key     string
	machine *progress.Machine
	driver  *frameDriver
	texts   map[progress.State]string
	text    string
	icons   map[progress.State]fyne.Resource
	icon    fyne.Resource

	pressed  bool
	hovered  bool
	disabled bool

	log *logrus.Entry
}

// New builds a button from a validated config.
func New(config model.ButtonConfig, onTapped func()) (*Button, error) {
	key := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{
		"component": "button",
		"key":       key,
	})

	machine, err := progress.NewMachine(config, progress.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("new button: %w", err)
	}

	button := &Button{
		OnTapped: onTapped,
		key:      key,
		machine:  machine,
		texts: map[progress.State]string{
			progress.StateIdle:     config.IdleText,
			progress.StateProgress: config.ProgressText,
			progress.StateComplete: config.CompleteText,
			progress.StateError:    config.ErrorText,
		},
		text:  config.IdleText,
		icons: map[progress.State]fyne.Resource{},
		log:   log,
	}
	button.driver = newFrameDriver(button.advance)
	machine.OnMorphStart(button.handleMorphStart)
	machine.OnStateChange(button.handleStateChange)
	button.ExtendBaseWidget(button)
	return button, nil
}

// CreateRenderer links the button to its raster renderer.
func (button *Button) CreateRenderer() fyne.WidgetRenderer {
	button.ExtendBaseWidget(button)
	return newRenderer(button)
}

// Key names the button in a state store.
func (button *Button) Key() string {
	return button.key
}

// SetKey replaces the generated key with a stable one.
func (button *Button) SetKey(key string) {
	if key == "" {
		return
	}
	button.key = key
	button.log = button.log.WithField("key", key)
}

// SetProgress requests a progress value: -1 error, 0 idle, max success,
// anything between is determinate progress. With animate false the button
// snaps to the target state.
func (button *Button) SetProgress(value int, animate bool) {
	button.machine.SetProgress(value, animate)
	button.update()
}

// Progress returns the last requested value.
func (button *Button) Progress() int {
	return button.machine.Progress()
}

// SetMaxProgress changes the value treated as success.
func (button *Button) SetMaxProgress(maxProgress int) error {
	if err := button.machine.SetMaxProgress(maxProgress); err != nil {
		return err
	}
	button.update()
	return nil
}

// SetIndeterminateProgressMode switches between the arc and the spinner.
func (button *Button) SetIndeterminateProgressMode(indeterminate bool) {
	button.machine.SetIndeterminateProgressMode(indeterminate)
	button.update()
}

// IsIndeterminateProgressMode reports whether the spinner is used.
func (button *Button) IsIndeterminateProgressMode() bool {
	return button.machine.IsIndeterminateProgressMode()
}

// State returns the settled state.
func (button *Button) State() progress.State {
	return button.machine.State()
}

// SaveState captures what is needed to rebuild the button.
func (button *Button) SaveState() progress.SavedState {
	return button.machine.Save()
}

// RestoreState snaps the button to a saved record.
func (button *Button) RestoreState(saved progress.SavedState) {
	button.machine.Restore(saved)
	button.showState(button.machine.State())
	button.update()
}

// SetText sets the label shown in state.
func (button *Button) SetText(state progress.State, text string) {
	button.texts[state] = text
	if state == button.machine.State() && !button.machine.Morphing() {
		button.text = text
	}
	button.Refresh()
}

// SetIcon shows resource instead of the text once the button settles in
// the complete or error state. A nil resource brings the text back.
func (button *Button) SetIcon(state progress.State, resource fyne.Resource) error {
	if state != progress.StateComplete && state != progress.StateError {
		return fmt.Errorf("icon for %s: %w", state, model.ErrInvalidConfig)
	}
	if resource == nil {
		delete(button.icons, state)
	} else {
		button.icons[state] = resource
	}
	if state == button.machine.State() && !button.machine.Morphing() {
		button.icon = resource
	}
	button.Refresh()
	return nil
}

// Icon returns the icon currently shown, if any.
func (button *Button) Icon() fyne.Resource {
	return button.icon
}

// SetPalette replaces the colours of the idle, complete or error state.
func (button *Button) SetPalette(state progress.State, palette model.Palette) error {
	if err := button.machine.SetPalette(state, palette); err != nil {
		return err
	}
	button.Refresh()
	return nil
}

// Text returns the label currently shown.
func (button *Button) Text() string {
	return button.text
}

// Tapped is called when the button is tapped.
func (button *Button) Tapped(*fyne.PointEvent) {
	if button.disabled || button.OnTapped == nil {
		return
	}
	button.OnTapped()
}

// MouseDown shows the pressed variant.
func (button *Button) MouseDown(*desktop.MouseEvent) {
	button.pressed = true
	button.syncInteraction()
}

// MouseUp clears the pressed variant.
func (button *Button) MouseUp(*desktop.MouseEvent) {
	button.pressed = false
	button.syncInteraction()
}

// MouseIn shows the focused variant.
func (button *Button) MouseIn(*desktop.MouseEvent) {
	button.hovered = true
	button.syncInteraction()
}

// MouseMoved is a no-op.
func (button *Button) MouseMoved(*desktop.MouseEvent) {}

// MouseOut clears the focused and pressed variants.
func (button *Button) MouseOut() {
	button.hovered = false
	button.pressed = false
	button.syncInteraction()
}

// Disable stops taps and shows the disabled variant.
func (button *Button) Disable() {
	button.disabled = true
	button.syncInteraction()
}

// Enable re-enables taps.
func (button *Button) Enable() {
	button.disabled = false
	button.syncInteraction()
}

// Disabled reports whether the button ignores taps.
func (button *Button) Disabled() bool {
	return button.disabled
}

func (button *Button) syncInteraction() {
	button.machine.SetInteraction(model.Interaction{
		Pressed:  button.pressed,
		Focused:  button.hovered,
		Disabled: button.disabled,
	})
	button.Refresh()
}

func (button *Button) handleMorphStart(recipe progress.Recipe) {
	button.log.WithField("morph", recipe.Name()).Debug("morph started")
	button.icon = nil
	if recipe.To == progress.StateProgress {
		button.text = button.texts[progress.StateProgress]
	}
}

func (button *Button) handleStateChange(state progress.State) {
	button.showState(state)
}

func (button *Button) showState(state progress.State) {
	button.text = button.texts[state]
	button.icon = button.icons[state]
}

// advance is the frame step shared by the driver and tests.
func (button *Button) advance(delta time.Duration) {
	button.machine.Advance(delta)
	button.update()
}

func (button *Button) update() {
	button.Refresh()
	button.syncDriver()
}

func (button *Button) syncDriver() {
	if button.machine.Animating() {
		button.driver.Start()
		return
	}
	button.driver.Stop()
}
