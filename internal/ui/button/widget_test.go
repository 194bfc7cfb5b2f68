package button

import (
	"image"
	"image/color"
	"testing"
	"time"

	"cpbutton/internal/core/model"
	"cpbutton/internal/core/progress"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestButton(t *testing.T) (*Button, *buttonRenderer) {
	t.Helper()
	test.NewApp()
	t.Cleanup(func() { test.NewApp() })

	config := model.DefaultConfig()
	config.ProgressText = ""
	button, err := New(config, nil)
	require.NoError(t, err)

	clock := time.Unix(0, 0)
	button.driver.now = func() time.Time { return clock }

	renderer := test.WidgetRenderer(button).(*buttonRenderer)
	button.Resize(fyne.NewSize(200, 40))
	return button, renderer
}

func settle(button *Button) {
	for i := 0; i < 100 && button.machine.Morphing(); i++ {
		button.advance(50 * time.Millisecond)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	config := model.DefaultConfig()
	config.MaxProgress = 0
	_, err := New(config, nil)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestButtonStartsIdle(t *testing.T) {
	button, renderer := newTestButton(t)

	assert.Equal(t, progress.StateIdle, button.State())
	assert.Equal(t, "Upload", renderer.label.Text)
	assert.True(t, renderer.label.Visible())
	assert.NotEmpty(t, button.Key())
	assert.False(t, button.driver.Running())
}

func TestButtonMorphsToProgressAndComplete(t *testing.T) {
	button, renderer := newTestButton(t)

	button.SetProgress(40, true)
	assert.True(t, button.driver.Running())
	assert.False(t, renderer.label.Visible())
	assert.Equal(t, progress.StateIdle, button.State())

	settle(button)
	assert.Equal(t, progress.StateProgress, button.State())
	assert.Equal(t, 40, button.Progress())
	assert.False(t, button.driver.Running())

	button.SetProgress(100, true)
	settle(button)
	assert.Equal(t, progress.StateComplete, button.State())
	assert.Equal(t, "Done", renderer.label.Text)
	assert.True(t, renderer.label.Visible())
}

func TestButtonErrorText(t *testing.T) {
	button, renderer := newTestButton(t)

	button.SetProgress(-1, true)
	settle(button)
	assert.Equal(t, progress.StateError, button.State())
	assert.Equal(t, "Error", renderer.label.Text)
}

func TestButtonSetText(t *testing.T) {
	button, renderer := newTestButton(t)

	button.SetText(progress.StateIdle, "Send")
	assert.Equal(t, "Send", renderer.label.Text)

	button.SetText(progress.StateComplete, "Sent")
	assert.Equal(t, "Send", button.Text())

	button.SetProgress(100, true)
	settle(button)
	assert.Equal(t, "Sent", renderer.label.Text)
}

func TestButtonIndeterminateKeepsDriverRunning(t *testing.T) {
	button, _ := newTestButton(t)

	button.SetIndeterminateProgressMode(true)
	assert.True(t, button.IsIndeterminateProgressMode())
	button.SetProgress(50, true)
	settle(button)

	assert.Equal(t, progress.StateProgress, button.State())
	assert.True(t, button.driver.Running())

	button.SetIndeterminateProgressMode(false)
	assert.False(t, button.driver.Running())
}

func TestButtonTapAndDisable(t *testing.T) {
	taps := 0
	test.NewApp()
	button, err := New(model.DefaultConfig(), func() { taps++ })
	require.NoError(t, err)

	test.Tap(button)
	assert.Equal(t, 1, taps)

	button.Disable()
	assert.True(t, button.Disabled())
	test.Tap(button)
	assert.Equal(t, 1, taps)

	button.Enable()
	test.Tap(button)
	assert.Equal(t, 2, taps)
}

func TestButtonInteractionSelectsVariant(t *testing.T) {
	button, _ := newTestButton(t)
	config := model.DefaultConfig()

	button.MouseIn(nil)
	assert.Equal(t, config.Idle.Focused, button.machine.Background().BackgroundColor)

	button.MouseDown(nil)
	assert.Equal(t, config.Idle.Pressed, button.machine.Background().BackgroundColor)

	button.MouseOut()
	assert.Equal(t, config.Idle.Normal, button.machine.Background().BackgroundColor)

	button.Disable()
	assert.Equal(t, config.Idle.Disabled, button.machine.Background().BackgroundColor)
}

func TestButtonSaveRestore(t *testing.T) {
	button, _ := newTestButton(t)
	button.SetIndeterminateProgressMode(true)
	button.SetProgress(100, true)
	settle(button)
	saved := button.SaveState()

	restored, renderer := newTestButton(t)
	restored.RestoreState(saved)

	assert.False(t, restored.machine.Morphing())
	assert.Equal(t, progress.StateComplete, restored.State())
	assert.True(t, restored.IsIndeterminateProgressMode())
	assert.Equal(t, "Done", renderer.label.Text)
}

func TestButtonRasterPaintsBackground(t *testing.T) {
	_, renderer := newTestButton(t)

	img := renderer.draw(200, 40)
	rgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, model.DefaultConfig().Idle.Normal, rgba.NRGBAAt(100, 20))
}

func TestButtonDestroyStopsDriver(t *testing.T) {
	button, renderer := newTestButton(t)
	button.SetIndeterminateProgressMode(true)
	button.SetProgress(30, true)
	settle(button)
	require.True(t, button.driver.Running())

	renderer.Destroy()
	assert.False(t, button.driver.Running())
	assert.Nil(t, button.machine.Spinner())
}

func TestButtonSetMaxProgress(t *testing.T) {
	button, _ := newTestButton(t)

	assert.Error(t, button.SetMaxProgress(0))
	require.NoError(t, button.SetMaxProgress(10))
	button.SetProgress(10, true)
	settle(button)
	assert.Equal(t, progress.StateComplete, button.State())
}

func TestFrameDriverDelta(t *testing.T) {
	test.NewApp()
	var deltas []time.Duration
	driver := newFrameDriver(func(delta time.Duration) { deltas = append(deltas, delta) })
	clock := time.Unix(0, 0)
	driver.now = func() time.Time { return clock }

	driver.Start()
	clock = clock.Add(16 * time.Millisecond)
	driver.tick(0.5)
	driver.Stop()
	driver.tick(0.6)

	require.NotEmpty(t, deltas)
	assert.Equal(t, 16*time.Millisecond, deltas[len(deltas)-1])
	assert.False(t, driver.Running())
}

func TestButtonSetProgressInstant(t *testing.T) {
	button, renderer := newTestButton(t)

	button.SetProgress(100, false)

	assert.False(t, button.machine.Morphing())
	assert.Equal(t, progress.StateComplete, button.State())
	assert.Equal(t, "Done", renderer.label.Text)
	assert.True(t, renderer.label.Visible())
	assert.False(t, button.driver.Running())
}

func TestButtonIconReplacesText(t *testing.T) {
	button, renderer := newTestButton(t)
	icon := theme.ConfirmIcon()

	require.NoError(t, button.SetIcon(progress.StateComplete, icon))
	assert.Error(t, button.SetIcon(progress.StateIdle, icon))
	assert.Nil(t, button.Icon())

	button.SetProgress(100, true)
	assert.False(t, renderer.icon.Visible())
	settle(button)

	assert.Equal(t, icon, button.Icon())
	assert.True(t, renderer.icon.Visible())
	assert.False(t, renderer.label.Visible())

	button.SetProgress(0, true)
	settle(button)
	assert.Nil(t, button.Icon())
	assert.False(t, renderer.icon.Visible())
	assert.Equal(t, "Upload", renderer.label.Text)
	assert.True(t, renderer.label.Visible())
}

func TestButtonIconClearedWhileSettled(t *testing.T) {
	button, renderer := newTestButton(t)
	require.NoError(t, button.SetIcon(progress.StateError, theme.ErrorIcon()))
	button.SetProgress(-1, false)
	require.True(t, renderer.icon.Visible())

	require.NoError(t, button.SetIcon(progress.StateError, nil))
	assert.False(t, renderer.icon.Visible())
	assert.Equal(t, "Error", renderer.label.Text)
	assert.True(t, renderer.label.Visible())
}

func TestButtonSetPalette(t *testing.T) {
	button, renderer := newTestButton(t)
	purple := model.Uniform(color.NRGBA{R: 0x80, B: 0x80, A: 0xff})

	require.NoError(t, button.SetPalette(progress.StateIdle, purple))

	img := renderer.draw(200, 40).(*image.NRGBA)
	assert.Equal(t, purple.Normal, img.NRGBAAt(100, 20))
	assert.Error(t, button.SetPalette(progress.StateProgress, purple))
}
