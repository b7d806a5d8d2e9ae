// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Header and footer frame
	FrameFgColor = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#E0E0E0"}
	FrameBgColor = lipgloss.AdaptiveColor{Light: "#0000C0", Dark: "#0000C0"}

	// Hex column
	HexFgColor = lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#C0C0C0"}
	HexBgColor = lipgloss.AdaptiveColor{Light: "#202020", Dark: "#202020"}

	// Glyph column
	GlyphFgColor = lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#C0C0C0"}
	GlyphBgColor = lipgloss.AdaptiveColor{Light: "#404040", Dark: "#404040"}

	// Selected bytes in both columns
	CursorFgColor = lipgloss.AdaptiveColor{Light: "#60FF60", Dark: "#60FF60"}
	CursorBgColor = lipgloss.AdaptiveColor{Light: "#006000", Dark: "#006000"}

	// Info bar: labels and fields sit on a spacer with a drop shadow
	InfoSpacerColor = lipgloss.AdaptiveColor{Light: "#8080FF", Dark: "#8080FF"}
	InfoShadowColor = lipgloss.AdaptiveColor{Light: "#202080", Dark: "#202080"}
	InfoLabelColor  = lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#C0C0C0"}
	InfoFieldColor  = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	InfoTextColor   = lipgloss.AdaptiveColor{Light: "#0000FF", Dark: "#0000FF"}

	// Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#696969", Dark: "#696969"}

	// Status
	StatusErrorColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	FrameStyle  = lipgloss.NewStyle().Foreground(FrameFgColor).Background(FrameBgColor)
	HexStyle    = lipgloss.NewStyle().Foreground(HexFgColor).Background(HexBgColor)
	GlyphStyle  = lipgloss.NewStyle().Foreground(GlyphFgColor).Background(GlyphBgColor)
	CursorStyle = lipgloss.NewStyle().Foreground(CursorFgColor).Background(CursorBgColor)

	InfoSpacerStyle      = lipgloss.NewStyle().Foreground(TextPrimaryColor).Background(InfoSpacerColor)
	InfoLabelStyle       = lipgloss.NewStyle().Foreground(InfoTextColor).Background(InfoLabelColor).Bold(true)
	InfoLabelAngleStyle  = lipgloss.NewStyle().Foreground(InfoLabelColor).Background(InfoSpacerColor)
	InfoSeparatorStyle   = lipgloss.NewStyle().Foreground(InfoFieldColor).Background(InfoLabelColor)
	InfoFieldStyle       = lipgloss.NewStyle().Foreground(InfoTextColor).Background(InfoFieldColor)
	InfoFieldAngleStyle  = lipgloss.NewStyle().Foreground(InfoFieldColor).Background(InfoShadowColor)
	InfoFieldShadowStyle = lipgloss.NewStyle().Foreground(InfoShadowColor).Background(InfoSpacerColor)

	// Help overlay
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextPrimaryColor).
			Background(HexBgColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)
