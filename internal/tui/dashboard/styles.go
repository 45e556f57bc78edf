package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor    = lipgloss.Color("99")  // Purple
	successColor    = lipgloss.Color("42")  // Green
	warningColor    = lipgloss.Color("226") // Yellow
	errorColor      = lipgloss.Color("196") // Red
	mutedColor      = lipgloss.Color("245") // Gray
	accentColor     = lipgloss.Color("212") // Pink
	backgroundColor = lipgloss.Color("235") // Dark gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			PaddingBottom(1)

	// Table rows
	rowStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	selectedRowStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(2).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	columnHeaderStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(mutedColor).
				Bold(true)

	// Score buckets
	scoreHighStyle = lipgloss.NewStyle().Foreground(successColor)
	scoreMidStyle  = lipgloss.NewStyle().Foreground(warningColor)
	scoreLowStyle  = lipgloss.NewStyle().Foreground(errorColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			PaddingTop(1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Background(lipgloss.Color("52")).
				Bold(true).
				Padding(0, 2).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(errorColor)

	successBannerStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Padding(0, 2).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(successColor)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3).
			Background(backgroundColor)

	confirmBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(warningColor).
			Padding(1, 4).
			Background(backgroundColor).
			Align(lipgloss.Center)

	confirmTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(warningColor)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Bold(true).
				Width(10)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	detailBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2).
			PaddingLeft(2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// ScoreStyle colours a score by bucket.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 8:
		return scoreHighStyle
	case score >= 5:
		return scoreMidStyle
	default:
		return scoreLowStyle
	}
}

// ApplyMaxWidth applies a maximum width to all relevant styles
func ApplyMaxWidth(width int) {
	if width <= 4 {
		return
	}
	rowStyle = rowStyle.MaxWidth(width - 4)
	selectedRowStyle = selectedRowStyle.MaxWidth(width - 4)
	headerStyle = headerStyle.Width(width - 2)
	footerStyle = footerStyle.Width(width - 2)
}
