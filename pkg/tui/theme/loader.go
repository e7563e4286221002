// ABOUTME: YAML theme file loading with validation and default fallback
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package theme

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// yamlPalette is the file representation of a Palette. Fields hold raw ANSI
// escape codes; snake_case keys match the theme file format.
type yamlPalette struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Muted     string `yaml:"muted"`
	Accent    string `yaml:"accent"`

	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Danger  string `yaml:"danger"`
	Info    string `yaml:"info"`

	Disabled string `yaml:"disabled"`

	Border    string `yaml:"border"`
	Selection string `yaml:"selection"`

	Bold      string `yaml:"bold"`
	Dim       string `yaml:"dim"`
	Italic    string `yaml:"italic"`
	Underline string `yaml:"underline"`
}

type yamlTheme struct {
	Name    string      `yaml:"name"`
	Palette yamlPalette `yaml:"palette"`
}

// LoadFile reads a YAML theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML theme data, merging unset fields from the default palette.
func Parse(data []byte) (*Theme, error) {
	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	return &Theme{
		Name:    yt.Name,
		Palette: mergePalette(yt.Palette, DefaultPalette()),
	}, nil
}

// mergePalette maps yamlPalette fields onto a Palette, keeping base values
// for empty fields. Field names match by reflection to avoid a long manual
// mapping.
func mergePalette(yp yamlPalette, base Palette) Palette {
	p := base

	ypv := reflect.ValueOf(yp)
	pv := reflect.ValueOf(&p).Elem()
	ypt := ypv.Type()

	for i := range ypt.NumField() {
		raw := ypv.Field(i).String()
		if raw == "" {
			continue
		}
		pf := pv.FieldByName(ypt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(raw)))
		}
	}

	return p
}
