package core

// Color is a foreground color for a screen cell, written as a lipgloss color
// spec: an ANSI code ("9", "208") or a hex value ("#ff6b6b"). The empty string
// means the terminal's default color.
type Color string

// Predefined colors for HUD and overlay elements.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorWhite       Color = "7"
	ColorGray        Color = "245"
	ColorBrightRed   Color = "9"
	ColorBrightGreen Color = "10"
	ColorBrightWhite Color = "15"
	ColorAccent      Color = "#e94560"
)
