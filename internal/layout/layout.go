// Package layout describes menus as data. A layout comes either from a YAML
// file or from the flag-driven defaults, and Build turns it into pages and
// buttons on a menu.Registry.
package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/grid-menu/internal/menu"
)

const (
	// SupportedVersions is the semver constraint layout files must satisfy.
	SupportedVersions = "^1"
	// CurrentVersion is written into generated layouts.
	CurrentVersion = "1.0.0"
	// DefaultFill is drawn into border cells when a layout names no fill.
	DefaultFill menu.Kind = "glass_pane"
	// InfoKind is the icon of the default layout's message button.
	InfoKind menu.Kind = "book"
)

// ErrUnsupportedVersion is returned for layouts outside SupportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported layout version")

// File is a complete menu layout.
type File struct {
	Version   string     `yaml:"version,omitempty"`
	Numbering string     `yaml:"numbering,omitempty"`
	Pages     []PageSpec `yaml:"pages,omitempty"`
	// All is applied to every page before the per-page decoration.
	All Decor `yaml:"all,omitempty"`
}

// PageSpec adds Count pages sharing rows, name and decoration.
type PageSpec struct {
	Name  string `yaml:"name,omitempty"`
	Rows  int    `yaml:"rows"`
	Count int    `yaml:"count,omitempty"`
	Decor `yaml:",inline"`
}

// Decor is the border and buttons drawn on a page.
type Decor struct {
	Frame   bool         `yaml:"frame,omitempty"`
	Border  []string     `yaml:"border,omitempty"`
	Fill    string       `yaml:"fill,omitempty"`
	Buttons []ButtonSpec `yaml:"buttons,omitempty"`
}

// ButtonSpec places one button. A nil Slot means the variant's default slot.
type ButtonSpec struct {
	Type    string `yaml:"type"`
	Slot    *int   `yaml:"slot,omitempty"`
	Kind    string `yaml:"kind,omitempty"`
	Message string `yaml:"message,omitempty"`
}

// Notifier receives the message of a clicked custom button.
type Notifier func(user menu.User, page *menu.Page, message string)

func (d Decor) empty() bool {
	return !d.Frame && len(d.Border) == 0 && len(d.Buttons) == 0
}

func (d Decor) fill() menu.Kind {
	if strings.TrimSpace(d.Fill) == "" {
		return DefaultFill
	}
	return menu.Kind(d.Fill)
}

// Load reads and validates a layout file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return parse(data, path)
}

// Parse validates and decodes layout YAML.
func Parse(data []byte) (*File, error) {
	return parse(data, "layout")
}

func parse(data []byte, source string) (*File, error) {
	issues, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if len(issues) > 0 {
		return nil, issuesError(source, issues)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &f, nil
}

func checkVersion(version string) error {
	if strings.TrimSpace(version) == "" {
		return nil
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("version %s outside %s: %w", v, SupportedVersions, ErrUnsupportedVersion)
	}
	return nil
}

// Default is the layout used when no file is given: count pages framed with
// DefaultFill, the four navigation buttons at their default slots and a
// message button in the middle of the top row.
func Default(count, rows int, name, numbering string) *File {
	top := menu.Columns / 2
	f := &File{
		Version:   CurrentVersion,
		Numbering: numbering,
		All: Decor{
			Frame: true,
			Fill:  string(DefaultFill),
			Buttons: []ButtonSpec{
				{Type: menu.VariantBack.String()},
				{Type: menu.VariantForward.String()},
				{Type: menu.VariantNewPage.String()},
				{Type: menu.VariantDeletePage.String()},
				{Type: menu.VariantCustom.String(), Slot: &top, Kind: string(InfoKind), Message: "arrows page, paper adds, tnt deletes"},
			},
		},
	}
	if count > 0 {
		f.Pages = []PageSpec{{Name: name, Rows: rows, Count: count}}
	}
	return f
}

// Marshal renders f as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Build adds the layout's pages to reg, decorates them and finally applies the
// numbering mode. Decoration failures on single pages are collected and
// returned together; a page that cannot be created stops the build.
func Build(reg *menu.Registry, f *File, notify Notifier) error {
	if reg == nil || f == nil {
		return fmt.Errorf("build layout: %w", menu.ErrInvalidArgument)
	}
	mode, err := menu.ParseNumbering(f.Numbering)
	if err != nil {
		return err
	}

	type pending struct {
		page  *menu.Page
		decor Decor
	}
	var added []pending
	for i, spec := range f.Pages {
		count := spec.Count
		if count == 0 {
			count = 1
		}
		pages, err := reg.AddPages(count, spec.Rows, spec.Name)
		if err != nil {
			return fmt.Errorf("layout page %d (%q): %w", i, spec.Name, err)
		}
		for _, p := range pages {
			added = append(added, pending{page: p, decor: spec.Decor})
		}
	}

	var errs []error
	if !f.All.empty() {
		if err := applyAll(reg, f.All, notify); err != nil {
			errs = append(errs, fmt.Errorf("layout all: %w", err))
		}
	}
	for _, item := range added {
		if item.decor.empty() {
			continue
		}
		if err := apply(item.page, item.decor, notify); err != nil {
			errs = append(errs, fmt.Errorf("layout page %d: %w", item.page.Number(), err))
		}
	}
	if mode != menu.NumberingNone {
		if err := reg.SetNumberingMode(mode); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// applyAll decorates every page through the registry's bulk operations where
// one exists for the request.
func applyAll(reg *menu.Registry, d Decor, notify Notifier) error {
	var errs []error
	switch {
	case d.Frame:
		for _, p := range reg.Pages() {
			if err := p.PlaceBorder(menu.FramePattern(p.Rows()), d.fill()); err != nil {
				errs = append(errs, err)
			}
		}
	case len(d.Border) > 0:
		pattern, err := menu.ParsePattern(d.Border)
		if err != nil {
			return err
		}
		if err := reg.FillBorderAll(pattern, d.fill()); err != nil {
			errs = append(errs, err)
		}
	}
	for _, spec := range d.Buttons {
		variant, err := parseVariant(spec.Type)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		switch {
		case variant == menu.VariantCustom:
			if spec.Slot == nil {
				errs = append(errs, fmt.Errorf("custom button needs a slot: %w", menu.ErrInvalidArgument))
				continue
			}
			err = reg.AddCustomButtonAll(menu.Kind(spec.Kind), *spec.Slot, messageAction(spec.Message, notify))
		case spec.Kind != "":
			for _, p := range reg.Pages() {
				if err := placeButton(p, variant, spec, notify); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		case spec.Slot == nil:
			err = reg.AddDefaultButtonAll(variant)
		default:
			err = reg.AddButtonAll(variant, *spec.Slot)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func apply(p *menu.Page, d Decor, notify Notifier) error {
	var errs []error
	switch {
	case d.Frame:
		if err := p.PlaceBorder(menu.FramePattern(p.Rows()), d.fill()); err != nil {
			errs = append(errs, err)
		}
	case len(d.Border) > 0:
		pattern, err := menu.ParsePattern(d.Border)
		if err == nil {
			err = p.PlaceBorder(pattern, d.fill())
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	for _, spec := range d.Buttons {
		variant, err := parseVariant(spec.Type)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := placeButton(p, variant, spec, notify); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func placeButton(p *menu.Page, variant menu.Variant, spec ButtonSpec, notify Notifier) error {
	slot := p.DefaultSlot(variant)
	if spec.Slot != nil {
		slot = *spec.Slot
	}
	if variant == menu.VariantCustom {
		if spec.Slot == nil {
			return fmt.Errorf("custom button needs a slot: %w", menu.ErrInvalidArgument)
		}
		_, err := p.AddCustomButton(menu.Kind(spec.Kind), slot, messageAction(spec.Message, notify))
		return err
	}
	return p.Place(menu.NewButton(variant, menu.Kind(spec.Kind)), slot)
}

func messageAction(msg string, notify Notifier) menu.Action {
	return func(evt menu.ActivationEvent, user menu.User, b *menu.Button) {
		if notify != nil {
			notify(user, b.Page(), msg)
		}
	}
}

func parseVariant(value string) (menu.Variant, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "back":
		return menu.VariantBack, nil
	case "forward":
		return menu.VariantForward, nil
	case "new-page", "newpage":
		return menu.VariantNewPage, nil
	case "delete-page", "deletepage":
		return menu.VariantDeletePage, nil
	case "custom":
		return menu.VariantCustom, nil
	}
	return menu.VariantCustom, fmt.Errorf("unknown button type %q: %w", value, menu.ErrInvalidArgument)
}
