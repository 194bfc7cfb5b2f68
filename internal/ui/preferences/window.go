package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the demo settings UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	onCancel      func()
	idleText      *widget.Entry
	progressText  *widget.Entry
	completeText  *widget.Entry
	errorText     *widget.Entry
	morphDuration *widget.Entry
	step          *widget.Entry
	interval      *widget.Entry
	indeterminate *widget.Check
}

// New creates a settings window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Progress Button Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		idleText:      widget.NewEntry(),
		progressText:  widget.NewEntry(),
		completeText:  widget.NewEntry(),
		errorText:     widget.NewEntry(),
		morphDuration: widget.NewEntry(),
		step:          widget.NewEntry(),
		interval:      widget.NewEntry(),
		indeterminate: widget.NewCheck("Indeterminate progress", nil),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Labels", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Idle", prefs.idleText),
			widget.NewFormItem("Progress", prefs.progressText),
			widget.NewFormItem("Complete", prefs.completeText),
			widget.NewFormItem("Error", prefs.errorText),
		),
		widget.NewLabelWithStyle("Animation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Morph duration"), prefs.morphDuration, widget.NewLabel("ms")),
		prefs.indeterminate,
		widget.NewLabelWithStyle("Simulation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Step"), prefs.step, widget.NewLabel("%")),
		container.NewHBox(widget.NewLabel("Every"), prefs.interval, widget.NewLabel("ms")),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 460))
	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// SetOnCancel registers a callback for the cancel button.
func (prefs *Window) SetOnCancel(onCancel func()) {
	prefs.onCancel = onCancel
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.idleText.SetText(settings.IdleText)
	prefs.progressText.SetText(settings.ProgressText)
	prefs.completeText.SetText(settings.CompleteText)
	prefs.errorText.SetText(settings.ErrorText)
	prefs.morphDuration.SetText(fmt.Sprintf("%d", settings.MorphDuration.Milliseconds()))
	prefs.step.SetText(fmt.Sprintf("%d", settings.SimulationStep))
	prefs.interval.SetText(fmt.Sprintf("%d", settings.SimulationInterval.Milliseconds()))
	prefs.indeterminate.SetChecked(settings.Indeterminate)
}

// Settings returns the values last saved or applied.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if prefs.idleText.Text != "" {
		settings.IdleText = prefs.idleText.Text
	}
	settings.ProgressText = prefs.progressText.Text
	if prefs.completeText.Text != "" {
		settings.CompleteText = prefs.completeText.Text
	}
	if prefs.errorText.Text != "" {
		settings.ErrorText = prefs.errorText.Text
	}
	if millis, ok := parsePositiveInt(prefs.morphDuration.Text); ok {
		settings.MorphDuration = time.Duration(millis) * time.Millisecond
	}
	if step, ok := parsePositiveInt(prefs.step.Text); ok && step <= 100 {
		settings.SimulationStep = step
	}
	if millis, ok := parsePositiveInt(prefs.interval.Text); ok {
		settings.SimulationInterval = time.Duration(millis) * time.Millisecond
	}
	settings.Indeterminate = prefs.indeterminate.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
