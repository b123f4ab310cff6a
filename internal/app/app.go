package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/grid-menu/internal/layout"
	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/atomicstack/grid-menu/internal/surface"
	"github.com/atomicstack/grid-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	LayoutPath  string
	Pages       int
	Rows        int
	Name        string
	Numbering   string
	User        string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	PrintLayout bool
	Check       bool
}

const defaultSource = "default"

// Run bootstraps and executes the Bubble Tea program, or one of the one-shot
// layout commands.
func Run(cfg Config) error {
	switch {
	case cfg.PrintLayout:
		return PrintLayout(os.Stdout, cfg)
	case cfg.Check:
		return Check(os.Stdout, cfg)
	}
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadLayout returns the layout file named by cfg, or the default layout
// built from the page flags. A numbering flag overrides the file's numbering.
func LoadLayout(cfg Config) (*layout.File, string, error) {
	if cfg.LayoutPath == "" {
		return layout.Default(cfg.Pages, cfg.Rows, cfg.Name, cfg.Numbering), defaultSource, nil
	}
	f, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return nil, cfg.LayoutPath, err
	}
	if cfg.Numbering != "" {
		f.Numbering = cfg.Numbering
	}
	return f, cfg.LayoutPath, nil
}

// NewModel builds the registry described by cfg and returns a terminal model
// showing its first page to cfg.User.
func NewModel(cfg Config) (*ui.Model, error) {
	f, source, err := LoadLayout(cfg)
	if err != nil {
		return nil, err
	}
	store := surface.NewStore()
	reg := menu.New(store)
	model := ui.NewModel(reg, store, surface.Player(cfg.User), ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	if err := layout.Build(reg, f, model.Notify); err != nil {
		return nil, fmt.Errorf("build layout %s: %w", source, err)
	}
	events.App.Layout(source, reg.Size(), reg.Mode().String())
	model.Open()
	return model, nil
}

// PrintLayout writes the effective layout as YAML.
func PrintLayout(w io.Writer, cfg Config) error {
	f, _, err := LoadLayout(cfg)
	if err != nil {
		return err
	}
	data, err := f.Marshal()
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Check validates and builds the layout against a scratch registry, then
// prints its page index.
func Check(w io.Writer, cfg Config) error {
	f, source, err := LoadLayout(cfg)
	if err != nil {
		return err
	}
	reg := menu.New(surface.NewStore())
	if err := layout.Build(reg, f, nil); err != nil {
		return fmt.Errorf("build layout %s: %w", source, err)
	}
	if _, err := fmt.Fprintf(w, "%s: %d page(s), numbering %s\n", source, reg.Size(), reg.Mode()); err != nil {
		return err
	}
	for _, line := range ui.PageIndex(reg.Pages()) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
