package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/bitdrill/internal/model"
)

// Palette used by every view. InitializeSkin overwrites these.
var (
	ColorNavy   = lipgloss.Color("#1B2A41")
	ColorBlue   = lipgloss.Color("#4FA3FF")
	ColorGray   = lipgloss.Color("#7A7F87")
	ColorGreen  = lipgloss.Color("#35DD2F")
	ColorRed    = lipgloss.Color("#FF4444")
	ColorOrange = lipgloss.Color("#FFA940")
	ColorWhite  = lipgloss.Color("#F5F5F5")
)

// Skin is a colour theme read from <configDir>/skins/<name>.yml.
type Skin struct {
	Name   string     `yaml:"name"`
	Colors SkinColors `yaml:"colors"`
}

// SkinColors maps theme roles to colours. Empty entries keep the default.
type SkinColors struct {
	Banner string `yaml:"banner"`
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
	Good   string `yaml:"good"`
	Bad    string `yaml:"bad"`
	Warn   string `yaml:"warn"`
	Text   string `yaml:"text"`
}

// DefaultSkin returns the built-in theme.
func DefaultSkin() Skin {
	return Skin{
		Name: model.DefaultSkin,
		Colors: SkinColors{
			Banner: "#1B2A41",
			Accent: "#4FA3FF",
			Muted:  "#7A7F87",
			Good:   "#35DD2F",
			Bad:    "#FF4444",
			Warn:   "#FFA940",
			Text:   "#F5F5F5",
		},
	}
}

// LoadSkin reads a skin file. Roles the file leaves out keep their
// default colour.
func LoadSkin(path string) (Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Skin{}, fmt.Errorf("reading skin: %w", err)
	}
	skin := DefaultSkin()
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return Skin{}, fmt.Errorf("parsing skin %s: %w", path, err)
	}
	return skin, nil
}

// InitializeSkin applies the named skin. On error the default skin is
// applied and the error is returned so the caller can warn.
func InitializeSkin(name, configDir string) error {
	if name == "" || name == model.DefaultSkin {
		applySkin(DefaultSkin())
		return nil
	}

	skin, err := LoadSkin(filepath.Join(configDir, "skins", name+".yml"))
	if err != nil {
		applySkin(DefaultSkin())
		return err
	}
	applySkin(skin)
	log.Printf("tui: loaded skin %q", name)
	return nil
}

func applySkin(s Skin) {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&ColorNavy, s.Colors.Banner)
	set(&ColorBlue, s.Colors.Accent)
	set(&ColorGray, s.Colors.Muted)
	set(&ColorGreen, s.Colors.Good)
	set(&ColorRed, s.Colors.Bad)
	set(&ColorOrange, s.Colors.Warn)
	set(&ColorWhite, s.Colors.Text)
}
