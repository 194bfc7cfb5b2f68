package main

import (
	"context"
	"errors"
	"os"
	"time"

	"cpbutton/internal/core/model"
	"cpbutton/internal/core/progress"
	"cpbutton/internal/platform"
	"cpbutton/internal/storage"
	"cpbutton/internal/ui/button"
	"cpbutton/internal/ui/preferences"
	"cpbutton/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const appName = "cpbutton"

type demo struct {
	key           string
	title         string
	indeterminate bool
	failAt        int
}

var demos = []demo{
	{key: "upload", title: "Determinate upload"},
	{key: "sync", title: "Indeterminate sync", indeterminate: true},
	{key: "flaky", title: "Upload that fails", failAt: 60},
}

type demoButton struct {
	demo   demo
	button *button.Button
	cancel context.CancelFunc
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("load .env")
	}
	configureLogging(os.Getenv("CPB_LOG_LEVEL"))
	log := logrus.WithField("component", "demo")

	lock, err := platform.AcquireStateLock(appName)
	if err != nil {
		log.WithError(err).Error("another demo owns the saved state")
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	buttonTheme, err := loadTheme(os.Getenv("CPB_THEME"))
	if err != nil {
		log.WithError(err).Error("load theme")
		return
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.WithError(err).Warn("load settings, using defaults")
	}

	store, err := storage.DefaultStateStore(appName)
	if err != nil {
		log.WithError(err).Warn("state store unavailable, state will not persist")
	}

	fyneApp := app.NewWithID("com.cpbutton.demo")
	fyneApp.SetIcon(resources.MustIcon())
	window := fyneApp.NewWindow("Circular Progress Button")

	config := settings.ButtonConfig(buttonTheme)
	buttons := make([]*demoButton, 0, len(demos))
	rows := make([]fyne.CanvasObject, 0, len(demos)*2)
	for _, entry := range demos {
		item, err := newDemoButton(entry, config, settings, store, log)
		if err != nil {
			log.WithError(err).Error("create button")
			return
		}
		buttons = append(buttons, item)
		rows = append(rows, widget.NewLabel(entry.title), container.NewCenter(item.button))
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.MorphDuration != settings.MorphDuration {
			log.WithField("morph_duration", updated.MorphDuration).Info("morph duration applies after restart")
		}
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.WithError(err).Error("save settings")
		}
		for _, item := range buttons {
			item.applySettings(settings)
		}
	})

	settingsButton := widget.NewButton("Settings", prefsWindow.Show)
	window.SetContent(container.NewBorder(nil, settingsButton, nil, nil, container.NewVBox(rows...)))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(func() {
		for _, item := range buttons {
			item.stop()
			if store == nil {
				continue
			}
			if err := store.Save(item.demo.key, item.button.SaveState()); err != nil {
				log.WithError(err).WithField("key", item.demo.key).Error("save button state")
			}
		}
		fyneApp.Quit()
	})

	window.ShowAndRun()
}

func configureLogging(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

func loadTheme(path string) (model.ButtonConfig, error) {
	config, err := storage.ParseTheme(resources.DefaultTheme(), model.DefaultConfig())
	if err != nil {
		return config, err
	}
	if path == "" {
		return config, nil
	}
	return storage.LoadTheme(path, config)
}

func newDemoButton(entry demo, config model.ButtonConfig, settings preferences.Settings, store *storage.StateStore, log *logrus.Entry) (*demoButton, error) {
	item := &demoButton{demo: entry}
	created, err := button.New(config, nil)
	if err != nil {
		return nil, err
	}
	created.SetKey(entry.key)
	if err := created.SetIcon(progress.StateComplete, theme.ConfirmIcon()); err != nil {
		return nil, err
	}
	if err := created.SetIcon(progress.StateError, theme.ErrorIcon()); err != nil {
		return nil, err
	}
	created.SetIndeterminateProgressMode(entry.indeterminate || settings.Indeterminate)
	created.OnTapped = func() { item.tapped(settings) }
	item.button = created

	if store != nil {
		saved, found, err := store.Load(entry.key)
		if err != nil {
			log.WithError(err).WithField("key", entry.key).Warn("load button state")
		}
		if found {
			created.RestoreState(saved)
			if progress.Classify(saved.Progress, config.MaxProgress) == progress.ClassProgress {
				item.simulate(settings, saved.Progress)
			}
		}
	}
	return item, nil
}

func (item *demoButton) applySettings(settings preferences.Settings) {
	item.button.SetText(progress.StateIdle, settings.IdleText)
	item.button.SetText(progress.StateProgress, settings.ProgressText)
	item.button.SetText(progress.StateComplete, settings.CompleteText)
	item.button.SetText(progress.StateError, settings.ErrorText)
	item.button.SetIndeterminateProgressMode(item.demo.indeterminate || settings.Indeterminate)
	item.button.OnTapped = func() { item.tapped(settings) }
}

func (item *demoButton) tapped(settings preferences.Settings) {
	switch item.button.State() {
	case progress.StateIdle:
		item.simulate(settings, 0)
	case progress.StateComplete, progress.StateError:
		item.button.SetProgress(progress.IdleProgress, true)
	case progress.StateProgress:
	}
}

// simulate feeds progress from a ticker until success or the configured failure.
func (item *demoButton) simulate(settings preferences.Settings, from int) {
	item.stop()
	ctx, cancel := context.WithCancel(context.Background())
	item.cancel = cancel

	step := settings.SimulationStep
	failAt := item.demo.failAt
	target := item.button
	go func() {
		ticker := time.NewTicker(settings.SimulationInterval)
		defer ticker.Stop()

		value := from
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			value += step
			switch {
			case failAt > 0 && value >= failAt:
				value = progress.ErrorProgress
			case value >= progress.SuccessProgress:
				value = progress.SuccessProgress
			}
			next := value
			fyne.Do(func() {
				target.SetProgress(next, true)
			})
			if next == progress.ErrorProgress || next == progress.SuccessProgress {
				return
			}
		}
	}()
}

func (item *demoButton) stop() {
	if item.cancel != nil {
		item.cancel()
		item.cancel = nil
	}
}
