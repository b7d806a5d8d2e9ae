// Package styles contains Lip Gloss style definitions.
package styles

import (
	"maps"
	"slices"
)

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"mono":             MonoPreset,
}

// DefaultPreset is the classic blue-frame heks look.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default heks theme",
	Colors: map[ColorToken]string{
		TokenFrameFg: "#E0E0E0",
		TokenFrameBg: "#0000C0",

		TokenHexFg:   "#C0C0C0",
		TokenHexBg:   "#202020",
		TokenGlyphFg: "#C0C0C0",
		TokenGlyphBg: "#404040",

		TokenCursorFg: "#60FF60",
		TokenCursorBg: "#006000",

		TokenInfoSpacer: "#8080FF",
		TokenInfoShadow: "#202080",
		TokenInfoLabel:  "#C0C0C0",
		TokenInfoField:  "#FFFFFF",
		TokenInfoText:   "#0000FF",

		TokenTextPrimary: "#FFFFFF",
		TokenTextMuted:   "#696969",
		TokenStatusError: "#FF8787",
	},
}

// CatppuccinMochaPreset uses the Catppuccin Mocha palette.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Soothing pastel theme (dark)",
	Colors: map[ColorToken]string{
		TokenFrameFg: "#CDD6F4", // text
		TokenFrameBg: "#313244", // surface0

		TokenHexFg:   "#BAC2DE", // subtext1
		TokenHexBg:   "#1E1E2E", // base
		TokenGlyphFg: "#BAC2DE",
		TokenGlyphBg: "#181825", // mantle

		TokenCursorFg: "#1E1E2E",
		TokenCursorBg: "#A6E3A1", // green

		TokenInfoSpacer: "#45475A", // surface1
		TokenInfoShadow: "#11111B", // crust
		TokenInfoLabel:  "#CBA6F7", // mauve
		TokenInfoField:  "#CDD6F4",
		TokenInfoText:   "#1E1E2E",

		TokenTextPrimary: "#CDD6F4",
		TokenTextMuted:   "#6C7086", // overlay0
		TokenStatusError: "#F38BA8", // red
	},
}

// DraculaPreset uses the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenFrameFg: "#F8F8F2",
		TokenFrameBg: "#44475A",

		TokenHexFg:   "#F8F8F2",
		TokenHexBg:   "#282A36",
		TokenGlyphFg: "#F8F8F2",
		TokenGlyphBg: "#21222C",

		TokenCursorFg: "#282A36",
		TokenCursorBg: "#50FA7B",

		TokenInfoSpacer: "#6272A4",
		TokenInfoShadow: "#191A21",
		TokenInfoLabel:  "#BD93F9",
		TokenInfoField:  "#F8F8F2",
		TokenInfoText:   "#282A36",

		TokenTextPrimary: "#F8F8F2",
		TokenTextMuted:   "#6272A4",
		TokenStatusError: "#FF5555",
	},
}

// MonoPreset is a grayscale theme for terminals with poor color support.
var MonoPreset = Preset{
	Name:        "mono",
	Description: "Grayscale theme",
	Colors: map[ColorToken]string{
		TokenFrameFg: "#000000",
		TokenFrameBg: "#C0C0C0",

		TokenHexFg:   "#C0C0C0",
		TokenHexBg:   "#000000",
		TokenGlyphFg: "#C0C0C0",
		TokenGlyphBg: "#1C1C1C",

		TokenCursorFg: "#000000",
		TokenCursorBg: "#FFFFFF",

		TokenInfoSpacer: "#808080",
		TokenInfoShadow: "#303030",
		TokenInfoLabel:  "#C0C0C0",
		TokenInfoField:  "#FFFFFF",
		TokenInfoText:   "#000000",

		TokenTextPrimary: "#FFFFFF",
		TokenTextMuted:   "#808080",
		TokenStatusError: "#FFFFFF",
	},
}

// PresetNames returns the preset names sorted for display.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}
