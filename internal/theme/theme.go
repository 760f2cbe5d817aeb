// Package theme holds the brand palette and the lipgloss styles built on it.
package theme

import "github.com/charmbracelet/lipgloss"

// Brand palette.
const (
	BG      = "#0B0B0D"
	Card    = "#131316"
	Text    = "#EAEAEA"
	Muted   = "#9CA3AF"
	Accent  = "#34D399"
	Accent2 = "#22C55E"
	Grid    = "#2A2A2E"
	Border  = "#1E1E24"
	Sky     = "#38BDF8"
	Amber   = "#F59E0B"
	Red     = "#EF4444"
	Neutral = "#8B8B94"
	Violet  = "#6B2FFF"
	White   = "#FFFFFF"
	Black   = "#000000"
)

var (
	CardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(Grid))
	CardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Text)).Bold(true)
	CardRightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Muted))

	TileStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(Border))
	TileLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Muted))
	TileValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Text)).Bold(true)
	TileSubStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Muted)).Faint(true)

	HeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(Border))
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Text)).Bold(true)
	LogoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Accent)).Bold(true)
	ToggleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Text))
	CTAStyle    = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Black)).
			Background(lipgloss.Color(Accent)).
			Bold(true).
			Padding(0, 2)

	SideHeadStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(Border))
	TaglineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Muted))
	ActiveNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(White)).
			Background(lipgloss.Color(Accent2)).
			Bold(true).
			Padding(0, 1)
	InactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Muted)).
				Padding(0, 1)
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color(Border))

	HeadingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Text)).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Muted))
	BackdropStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Grid)).Faint(true)
	HelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	AxisStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Muted))
)

// Fg returns a style painting text in the given hex color.
func Fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
