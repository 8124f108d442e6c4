package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all command output, tuned for dark terminal
// backgrounds.
const (
	// ColorPrimary is purple - titles and the application name.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - positive outcomes.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - caution states.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - source labels and interactive elements.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Base styles built from the palette.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for the violation lines of a failing report.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for caution notices, like an already installed hook.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// LabelStyle is for the source label above each failing report.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)
