// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import hexview, but hexview can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors, err := ResolveColors(cfg)
	if err != nil {
		return err
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

// ResolveColors merges the default preset, the chosen preset and the
// individual overrides without touching any style.
func ResolveColors(cfg ThemeConfig) (map[ColorToken]string, error) {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return nil, fmt.Errorf("unknown color token: %s", key)
		}
		if !IsValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	return colors, nil
}

func applyColors(colors map[ColorToken]string) {
	// Helper to create adaptive color (uses same color for both modes)
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenFrameFg:     &FrameFgColor,
		TokenFrameBg:     &FrameBgColor,
		TokenHexFg:       &HexFgColor,
		TokenHexBg:       &HexBgColor,
		TokenGlyphFg:     &GlyphFgColor,
		TokenGlyphBg:     &GlyphBgColor,
		TokenCursorFg:    &CursorFgColor,
		TokenCursorBg:    &CursorBgColor,
		TokenInfoSpacer:  &InfoSpacerColor,
		TokenInfoShadow:  &InfoShadowColor,
		TokenInfoLabel:   &InfoLabelColor,
		TokenInfoField:   &InfoFieldColor,
		TokenInfoText:    &InfoTextColor,
		TokenTextPrimary: &TextPrimaryColor,
		TokenTextMuted:   &TextMutedColor,
		TokenStatusError: &StatusErrorColor,
	}

	for token, target := range targets {
		if c, ok := colors[token]; ok {
			*target = makeColor(c)
		}
	}
}

// rebuildStyles recreates all Style objects with current color values.
func rebuildStyles() {
	FrameStyle = lipgloss.NewStyle().Foreground(FrameFgColor).Background(FrameBgColor)
	HexStyle = lipgloss.NewStyle().Foreground(HexFgColor).Background(HexBgColor)
	GlyphStyle = lipgloss.NewStyle().Foreground(GlyphFgColor).Background(GlyphBgColor)
	CursorStyle = lipgloss.NewStyle().Foreground(CursorFgColor).Background(CursorBgColor)

	InfoSpacerStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Background(InfoSpacerColor)
	InfoLabelStyle = lipgloss.NewStyle().Foreground(InfoTextColor).Background(InfoLabelColor).Bold(true)
	InfoLabelAngleStyle = lipgloss.NewStyle().Foreground(InfoLabelColor).Background(InfoSpacerColor)
	InfoSeparatorStyle = lipgloss.NewStyle().Foreground(InfoFieldColor).Background(InfoLabelColor)
	InfoFieldStyle = lipgloss.NewStyle().Foreground(InfoTextColor).Background(InfoFieldColor)
	InfoFieldAngleStyle = lipgloss.NewStyle().Foreground(InfoFieldColor).Background(InfoShadowColor)
	InfoFieldShadowStyle = lipgloss.NewStyle().Foreground(InfoShadowColor).Background(InfoSpacerColor)

	HelpStyle = lipgloss.NewStyle().
		Foreground(TextPrimaryColor).
		Background(HexBgColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

// IsValidHexColor reports whether s is a #rgb or #rrggbb color.
func IsValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
