package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, ApplyTheme(ThemeConfig{}))
	})
}

func TestApplyTheme_Default(t *testing.T) {
	resetTheme(t)
	err := ApplyTheme(ThemeConfig{})
	require.NoError(t, err)
	// Should apply default preset colors
	require.Equal(t, DefaultPreset.Colors[TokenCursorBg], CursorBgColor.Dark)
	require.Equal(t, DefaultPreset.Colors[TokenFrameBg], FrameBgColor.Dark)
}

func TestApplyTheme_Preset(t *testing.T) {
	resetTheme(t)
	// First add a test preset
	TestPreset := Preset{
		Name:        "test",
		Description: "Test preset",
		Colors: map[ColorToken]string{
			TokenHexFg: "#FF0000",
		},
	}
	Presets["test"] = TestPreset
	defer delete(Presets, "test")

	err := ApplyTheme(ThemeConfig{Preset: "test"})
	require.NoError(t, err)
	require.Equal(t, "#FF0000", HexFgColor.Dark)
	require.Equal(t, DefaultPreset.Colors[TokenGlyphFg], GlyphFgColor.Dark, "tokens the preset omits keep their defaults")
}

func TestApplyTheme_ColorOverride(t *testing.T) {
	resetTheme(t)
	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"cursor.bg": "#00FF00",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "#00FF00", CursorBgColor.Dark)
}

func TestApplyTheme_PresetWithOverride(t *testing.T) {
	resetTheme(t)
	err := ApplyTheme(ThemeConfig{
		Preset: "dracula",
		Colors: map[string]string{
			"cursor.bg": "#00FF00", // Override preset
		},
	})
	require.NoError(t, err)
	require.Equal(t, "#00FF00", CursorBgColor.Dark)                            // Overridden
	require.Equal(t, DraculaPreset.Colors[TokenCursorFg], CursorFgColor.Dark) // From preset
}

func TestApplyTheme_InvalidPreset(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Preset: "nonexistent"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme preset")
}

func TestApplyTheme_InvalidToken(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"invalid.token": "#FF0000",
		},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color token")
}

func TestApplyTheme_InvalidHexColor(t *testing.T) {
	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"hex.fg": "not-a-color",
		},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid hex color")
}

func TestApplyTheme_ErrorLeavesColorsUntouched(t *testing.T) {
	resetTheme(t)
	before := HexFgColor

	err := ApplyTheme(ThemeConfig{
		Colors: map[string]string{
			"hex.fg":    "#123456",
			"hex.bogus": "#654321",
		},
	})
	require.Error(t, err)
	require.Equal(t, before, HexFgColor)
}

func TestApplyTheme_RunsRebuilders(t *testing.T) {
	resetTheme(t)
	saved := styleRebuilders
	t.Cleanup(func() { styleRebuilders = saved })

	calls := 0
	RegisterStyleRebuilder(func() { calls++ })

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "mono"}))
	require.Equal(t, 1, calls)
}

func TestResolveColors_CoversEveryToken(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			colors, err := ResolveColors(ThemeConfig{Preset: name})
			require.NoError(t, err)
			for _, token := range AllTokens() {
				require.Contains(t, colors, token)
			}
		})
	}
}

func TestIsValidToken(t *testing.T) {
	tests := []struct {
		token ColorToken
		valid bool
	}{
		{TokenCursorBg, true},
		{TokenStatusError, true},
		{ColorToken("info.field"), true},
		{ColorToken("invalid.token"), false},
		{ColorToken(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.token), func(t *testing.T) {
			require.Equal(t, tt.valid, isValidToken(tt.token))
		})
	}
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#FFF", true},
		{"#FFFFFF", true},
		{"#abc", true},
		{"#AbCdEf", true},
		{"#123456", true},
		{"FFFFFF", false},   // Missing #
		{"#FF", false},      // Too short
		{"#FFFFFFF", false}, // Too long
		{"#GGGGGG", false},  // Invalid chars
		{"not-color", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			require.Equal(t, tt.valid, IsValidHexColor(tt.color))
		})
	}
}
