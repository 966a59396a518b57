package tui

// Color constants for the clock theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Readouts, titles
	ColorSecondaryText = "#B1B8C7" // Region labels
	ColorDisabledText  = "#6D7383" // Control hints
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Title, session phase
	ColorAccentBright = "#A78BFA" // Big clock

	// State Colors
	ColorBreak   = "#38BDF8" // Break phase
	ColorError   = "#EF4444" // Reset control
	ColorSuccess = "#22C55E" // Start control
	ColorWarning = "#F59E0B" // Pause control
)
