package report

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// colorDef represents an adaptive color definition in YAML
type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// styleDef represents a style definition in YAML
type styleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// styleRegistry maps semantic names to lipgloss styles
var styleRegistry map[string]lipgloss.Style

func init() {
	styleRegistry = make(map[string]lipgloss.Style)

	var cfg stylesConfig
	if err := yaml.Unmarshal(embeddedStyles, &cfg); err != nil {
		// Fall back to unstyled output; the embedded file is compile-time
		// content so this only fires during development
		return
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if c, ok := colors[def.Foreground]; ok {
			style = style.Foreground(c)
		}
		styleRegistry[name] = style
	}
}

// styled renders text with the named style, or verbatim when the style is
// unknown or styling is disabled.
func styled(enabled bool, name, text string) string {
	if !enabled {
		return text
	}
	style, ok := styleRegistry[name]
	if !ok {
		return text
	}
	return style.Render(text)
}
