// Package theme holds the lipgloss palettes and styles shared by the
// jsontree TUI and CLI output.
package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaGreen              = "#98BB6C"
	kanagawaYellow             = "#FF9E3B"
	kanagawaRed                = "#FF5D62"
	kanagawaOrange             = "#FFA066"
	kanagawaCyan               = "#7E9CD8"
	kanagawaBlue               = "#7FB4CA"
	kanagawaViolet             = "#957FB8"
	kanagawaLightText          = "#DCD7BA"
	kanagawaMutedText          = "#727169"
	kanagawaDarkText           = "#1D1C19"
	kanagawaBorder             = "#363646"
	kanagawaSelectedBackground = "#223249"
	kanagawaSubtleBackground   = "#1F1F28"
)

// --- Gruvbox (dark) palette ---
const (
	gruvboxGreen              = "#B8BB26"
	gruvboxYellow             = "#FABD2F"
	gruvboxRed                = "#FB4934"
	gruvboxOrange             = "#FE8019"
	gruvboxCyan               = "#83A598"
	gruvboxBlue               = "#458588"
	gruvboxViolet             = "#B16286"
	gruvboxLightText          = "#EBDBB2"
	gruvboxMutedText          = "#BDAE93"
	gruvboxDarkText           = "#1D2021"
	gruvboxBorder             = "#504945"
	gruvboxSelectedBackground = "#32302F"
	gruvboxSubtleBackground   = "#282828"
)

// Colors is the raw palette a theme is built from.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	DarkText           lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for jsontree output.
type Theme struct {
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Containers
	Box lipgloss.Style

	// Special styles
	Highlight    lipgloss.Style // search match background
	FocusedMatch lipgloss.Style // the focused search match
	Accent       lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
}

var themeAliases = map[string]string{
	"kanagawa-dragon": "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"default":         "kanagawa",
}

// DefaultTheme is the active theme instance. SetDefault replaces it.
var DefaultTheme = newThemeFromName(getThemeName())

// SetDefault switches the active theme by palette name. Unknown names fall
// back to the default palette. Callers apply their configured theme once at
// startup, before any styled output.
func SetDefault(name string) {
	DefaultTheme = newThemeFromName(name)
}

// NewThemeWithName constructs a theme from a specific palette name.
func NewThemeWithName(name string) *Theme {
	return newThemeFromName(name)
}

// Names lists the registered palette names.
func Names() []string {
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	return names
}

func getThemeName() string {
	if name := os.Getenv("JSONTREE_THEME"); name != "" {
		return name
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := themeAliases[name]; ok {
		return alias
	}
	return name
}

func newThemeFromName(name string) *Theme {
	newColors, ok := themeRegistry[normalizeThemeName(name)]
	if !ok {
		newColors = themeRegistry[defaultThemeName]
	}
	return newThemeFromColors(newColors())
}

func newThemeFromColors(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.LightText).
			Background(colors.SubtleBackground).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Cyan),

		Success: lipgloss.NewStyle().Foreground(colors.Green),
		Error:   lipgloss.NewStyle().Foreground(colors.Red),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow),
		Info:    lipgloss.NewStyle().Foreground(colors.Blue),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle().Foreground(colors.LightText),
		Muted:  lipgloss.NewStyle().Foreground(colors.MutedText),
		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Bold(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		Highlight: lipgloss.NewStyle().
			Background(colors.Yellow).
			Foreground(colors.DarkText),
		FocusedMatch: lipgloss.NewStyle().
			Background(colors.Orange).
			Foreground(colors.DarkText).
			Bold(true),
		Accent: lipgloss.NewStyle().Foreground(colors.Violet),
	}
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.Color(kanagawaGreen),
		Yellow:             lipgloss.Color(kanagawaYellow),
		Red:                lipgloss.Color(kanagawaRed),
		Orange:             lipgloss.Color(kanagawaOrange),
		Cyan:               lipgloss.Color(kanagawaCyan),
		Blue:               lipgloss.Color(kanagawaBlue),
		Violet:             lipgloss.Color(kanagawaViolet),
		LightText:          lipgloss.Color(kanagawaLightText),
		MutedText:          lipgloss.Color(kanagawaMutedText),
		DarkText:           lipgloss.Color(kanagawaDarkText),
		Border:             lipgloss.Color(kanagawaBorder),
		SelectedBackground: lipgloss.Color(kanagawaSelectedBackground),
		SubtleBackground:   lipgloss.Color(kanagawaSubtleBackground),
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.Color(gruvboxGreen),
		Yellow:             lipgloss.Color(gruvboxYellow),
		Red:                lipgloss.Color(gruvboxRed),
		Orange:             lipgloss.Color(gruvboxOrange),
		Cyan:               lipgloss.Color(gruvboxCyan),
		Blue:               lipgloss.Color(gruvboxBlue),
		Violet:             lipgloss.Color(gruvboxViolet),
		LightText:          lipgloss.Color(gruvboxLightText),
		MutedText:          lipgloss.Color(gruvboxMutedText),
		DarkText:           lipgloss.Color(gruvboxDarkText),
		Border:             lipgloss.Color(gruvboxBorder),
		SelectedBackground: lipgloss.Color(gruvboxSelectedBackground),
		SubtleBackground:   lipgloss.Color(gruvboxSubtleBackground),
	}
}

// newTerminalColors maps everything onto the terminal's own ANSI palette.
func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color("2"),
		Yellow:             lipgloss.Color("3"),
		Red:                lipgloss.Color("1"),
		Orange:             lipgloss.Color("9"),
		Cyan:               lipgloss.Color("6"),
		Blue:               lipgloss.Color("4"),
		Violet:             lipgloss.Color("5"),
		LightText:          lipgloss.Color("7"),
		MutedText:          lipgloss.Color("8"),
		DarkText:           lipgloss.Color("0"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("0"),
		SubtleBackground:   lipgloss.Color("0"),
	}
}
