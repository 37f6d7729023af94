package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition referencing named colors
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// StylesConfig is the styles file layout
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Styles maps semantic names to lipgloss styles
type Styles map[string]lipgloss.Style

// DefaultStyles returns the embedded styles
func DefaultStyles() Styles {
	styles, err := LoadStyles(embeddedStyles)
	if err != nil {
		return Styles{}
	}
	return styles
}

// LoadStyles parses a styles definition
func LoadStyles(data []byte) (Styles, error) {
	var config StylesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(Styles, len(config.Styles))
	for name, def := range config.Styles {
		style := lipgloss.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
		if def.PaddingLeft > 0 {
			style = style.PaddingLeft(def.PaddingLeft)
		}
		styles[name] = style
	}

	return styles, nil
}

// Get returns the named style, or an empty style when it is not defined
func (s Styles) Get(name string) lipgloss.Style {
	if style, ok := s[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
