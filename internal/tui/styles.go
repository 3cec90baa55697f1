package tui

import "github.com/charmbracelet/lipgloss"

const cardWidth = 26

var (
	accent = lipgloss.Color("#EF4444")
	muted  = lipgloss.Color("#6E6E6E")
	good   = lipgloss.Color("#22C55E")
	bad    = lipgloss.Color("#FF4D4F")
	info   = lipgloss.Color("#60A5FA")
	border = lipgloss.Color("#4A4A4A")

	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Italic(true)
	accentStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(muted)
	textStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	goodStyle      = lipgloss.NewStyle().Foreground(good).Bold(true)
	badStyle       = lipgloss.NewStyle().Foreground(bad).Bold(true)
	infoStyle      = lipgloss.NewStyle().Foreground(info).Bold(true)
	stepStyle      = lipgloss.NewStyle().Foreground(accent).Faint(true)
	badgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(accent).Bold(true).Padding(0, 1)
	queueHeadStyle = lipgloss.NewStyle().Foreground(info)
	queueStyle     = lipgloss.NewStyle().Foreground(border)
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Background(lipgloss.Color("#E5E5E5")).Bold(true).Padding(0, 1)
	keyDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B6B6B")).Background(lipgloss.Color("#2E2E2E")).Padding(0, 1)
	memorizeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#B91C1C")).Bold(true).Padding(1, 4)

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Align(lipgloss.Center).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(border)
	dimCardStyle     = cardStyle.BorderForeground(lipgloss.Color("#2A2A2A")).Foreground(muted)
	lockedCardStyle  = cardStyle.Foreground(muted)
	correctCardStyle = cardStyle.BorderForeground(good)
	wrongCardStyle   = cardStyle.BorderForeground(bad)

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(border)
	remarkPanelStyle = panelStyle.BorderForeground(lipgloss.Color("#7F1D1D"))
)
