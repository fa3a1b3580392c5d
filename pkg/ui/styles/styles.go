// Package styles holds the named lipgloss styles used by the terminal
// renderer.
//
// Styles are declared in an embedded YAML file with adaptive colors, so the
// same name renders sensibly on light and dark terminals:
//
//	styles:
//	  Kept:
//	    foreground: success
package styles

import (
	_ "embed"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/twmerge/pkg/errors"
)

// ColorDef is an adaptive color as written in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style as written in YAML. Foreground and Background name an
// entry of Config.Colors.
type StyleDef struct {
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
	Width         int    `yaml:"width,omitempty"`
	Align         string `yaml:"align,omitempty"`
	MarginLeft    int    `yaml:"marginLeft,omitempty"`
	MarginBottom  int    `yaml:"marginBottom,omitempty"`
	MarginTop     int    `yaml:"marginTop,omitempty"`
	PaddingLeft   int    `yaml:"paddingLeft,omitempty"`
	PaddingRight  int    `yaml:"paddingRight,omitempty"`
}

// Config is a complete styles document
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	mu       sync.RWMutex
	registry map[string]lipgloss.Style
)

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// initDefaultStyles registers unstyled entries for the names the renderers use
func initDefaultStyles() {
	mu.Lock()
	defer mu.Unlock()

	registry = make(map[string]lipgloss.Style)
	for _, name := range []string{
		"Header", "SubHeader", "Output", "Kept", "Dropped", "Opaque",
		"Group", "Variant", "Important", "Muted", "Info", "Error", "Indent",
	} {
		registry[name] = lipgloss.NewStyle()
	}
}

// Embedded returns the embedded styles document
func Embedded() []byte {
	return embeddedStyles
}

// Parse decodes a styles document and checks that every color parses and
// every style refers to a declared color.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles data")
	}

	var errs []error
	for _, name := range sortedKeys(cfg.Colors) {
		def := cfg.Colors[name]
		for _, v := range []string{def.Light, def.Dark} {
			if _, err := toColor(v); err != nil {
				errs = append(errs, errors.Wrapf(err, errors.ErrConfigValid, "color %q", name).
					WithDetail("value", v))
			}
		}
	}
	for _, name := range sortedKeys(cfg.Styles) {
		def := cfg.Styles[name]
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref == "" {
				continue
			}
			if _, ok := cfg.Colors[ref]; !ok {
				errs = append(errs, errors.Newf(errors.ErrConfigValid, "style %q uses undeclared color %q", name, ref))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStylesFromData replaces the registry with the styles in data
func LoadStylesFromData(data []byte) error {
	cfg, err := Parse(data)
	if err != nil {
		return err
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		// Parse already checked both values.
		light, _ := toColor(def.Light)
		dark, _ := toColor(def.Dark)
		colors[name] = lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	next := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		next[name] = buildStyle(def, colors)
	}

	mu.Lock()
	registry = next
	mu.Unlock()
	return nil
}

// toColor normalises a CSS color to hex. ANSI palette indexes pass through.
func toColor(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v != "" && strings.Trim(v, "0123456789") == "" {
		return v, nil
	}
	c, err := csscolorparser.Parse(v)
	if err != nil {
		return "", err
	}
	return c.HexString(), nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Strikethrough {
		style = style.Strikethrough(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	case "left":
		style = style.Align(lipgloss.Left)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// GetStyle returns the named style, or an empty style for unknown names
func GetStyle(name string) lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is registered
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Names lists the registered style names in order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return sortedKeys(registry)
}

// MergeStyles combines the named styles, earlier names taking precedence
func MergeStyles(names ...string) lipgloss.Style {
	result := lipgloss.NewStyle()
	for _, name := range names {
		result = result.Inherit(GetStyle(name))
	}
	return result
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
