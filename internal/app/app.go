package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/wirecalc/internal/backend"
	"github.com/atomicstack/wirecalc/internal/state"
	"github.com/atomicstack/wirecalc/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const reloadDebounce = 100 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Panel       string
	Title       string
	Breakpoint  int
	DrawerWidth int
	ConfigFile  string
	Watch       bool
}

// Preferences extracts the settings that may be reloaded at runtime.
func (c Config) Preferences() state.Preferences {
	return state.Preferences{
		Breakpoint:  c.Breakpoint,
		DrawerWidth: c.DrawerWidth,
		ShowFooter:  c.ShowFooter,
	}
}

// ReloadFunc re-reads the full configuration after the config file changes.
type ReloadFunc func() (Config, error)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config, reload ReloadFunc) error {
	watcher, err := newWatcher(cfg, reload)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Stop()
	}
	model := ui.NewModel(ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Panel:       cfg.Panel,
		Title:       cfg.Title,
		Preferences: cfg.Preferences(),
		Watcher:     watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newWatcher returns nil when live reload is disabled.
func newWatcher(cfg Config, reload ReloadFunc) (*backend.Watcher, error) {
	if !cfg.Watch || cfg.ConfigFile == "" || reload == nil {
		return nil, nil
	}
	w, err := backend.NewWatcher(cfg.ConfigFile, func(context.Context) (interface{}, error) {
		next, err := reload()
		if err != nil {
			return nil, err
		}
		return next.Preferences(), nil
	}, reloadDebounce)
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	return w, nil
}
