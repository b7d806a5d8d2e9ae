// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by screen area.
// These are the keys users can override in their config.
const (
	// Header and footer frame
	TokenFrameFg ColorToken = "frame.fg"
	TokenFrameBg ColorToken = "frame.bg"

	// Hex column
	TokenHexFg ColorToken = "hex.fg"
	TokenHexBg ColorToken = "hex.bg"

	// Glyph column
	TokenGlyphFg ColorToken = "glyph.fg"
	TokenGlyphBg ColorToken = "glyph.bg"

	// Selection
	TokenCursorFg ColorToken = "cursor.fg"
	TokenCursorBg ColorToken = "cursor.bg"

	// Info bar
	TokenInfoSpacer ColorToken = "info.spacer"
	TokenInfoShadow ColorToken = "info.shadow"
	TokenInfoLabel  ColorToken = "info.label"
	TokenInfoField  ColorToken = "info.field"
	TokenInfoText   ColorToken = "info.text"

	// Text hierarchy
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"

	// Status indicators
	TokenStatusError ColorToken = "status.error"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenFrameFg,
		TokenFrameBg,

		TokenHexFg,
		TokenHexBg,

		TokenGlyphFg,
		TokenGlyphBg,

		TokenCursorFg,
		TokenCursorBg,

		TokenInfoSpacer,
		TokenInfoShadow,
		TokenInfoLabel,
		TokenInfoField,
		TokenInfoText,

		TokenTextPrimary,
		TokenTextMuted,

		TokenStatusError,
	}
}
