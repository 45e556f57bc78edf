package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

const (
	minWidth  = 40
	minHeight = 10
)

// View renders the current model state
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d", m.width, m.height, minWidth, minHeight)
	}

	switch m.viewMode {
	case ViewDetail:
		return m.renderDetailView()
	case ViewHelp:
		return m.renderHelpView()
	case ViewConfirm:
		return m.renderConfirmView()
	default:
		return m.renderListView()
	}
}

func (m Model) renderListView() string {
	sections := []string{m.renderHeader()}
	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, m.renderTable(), m.renderFooter(m.listHints()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title with the collection size and activity
func (m Model) renderHeader() string {
	icon := ""
	if m.useUnicode {
		icon = "🎓 "
	}
	title := titleStyle.Render(icon + "Roster")

	summary := fmt.Sprintf("%d students", len(m.state.Students))
	if len(m.state.Students) == 1 {
		summary = "1 student"
	}
	if m.state.Loading {
		summary += fmt.Sprintf("  %s Loading...", m.spinner.View())
	}

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, mutedStyle.Render(summary)))
}

// renderBanner shows the current error, or a confirmation of the last
// successful mutation.
func (m Model) renderBanner() string {
	if msg := m.state.ErrorMessage(); msg != "" {
		return errorBannerStyle.Render("Error: " + msg + "  (x to dismiss)")
	}
	if m.state.Succeeded {
		return successBannerStyle.Render("Saved  (x to dismiss)")
	}
	return ""
}

func (m Model) renderTable() string {
	if len(m.state.Students) == 0 {
		if m.state.Loading {
			return emptyStateStyle.Render("Loading students...")
		}
		return emptyStateStyle.Render("No students yet.\n\nCreate one with:\n  roster create --name <name> --age <age> --program <program> --score <score>")
	}

	rows := []string{columnHeaderStyle.Render(formatRow("ID", "NAME", "AGE", "PROGRAM", "SCORE"))}

	start := m.scrollOffset
	end := start + m.visibleRows()
	if end > len(m.state.Students) {
		end = len(m.state.Students)
	}

	if start > 0 {
		rows = append(rows, mutedStyle.Render(m.glyph("▲", "^")+" More above"))
	}
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(m.state.Students[i], i == m.cursor))
	}
	if end < len(m.state.Students) {
		rows = append(rows, mutedStyle.Render(m.glyph("▼", "v")+" More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderRow(s student.Student, selected bool) string {
	score := ScoreStyle(s.Score).Render(fmt.Sprintf("%5.2f", s.Score))
	line := formatRow(s.ID.String(), truncate(s.Name, 24), fmt.Sprintf("%d", s.Age), truncate(s.Program, 20), score)
	if selected {
		return selectedRowStyle.Render(line)
	}
	return rowStyle.Render(line)
}

func formatRow(id, name, age, program, score string) string {
	return fmt.Sprintf("%-6s %-24s %4s  %-20s %s", id, name, age, program, score)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func (m Model) listHints() []string {
	hints := []string{
		m.glyph("↑/↓", "j/k") + ": navigate",
		"enter: details",
		"d: delete",
		"r: reload",
	}
	if m.state.Err != nil || m.state.Succeeded {
		hints = append(hints, "x: dismiss")
	}
	return append(hints, "?: help", "q: quit")
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter(hints []string) string {
	return footerStyle.Render(strings.Join(hints, "  •  "))
}

func (m Model) renderDetailView() string {
	sections := []string{m.renderHeader()}
	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}

	switch {
	case m.state.Selected != nil:
		s := m.state.Selected
		fields := []string{
			detailField("ID", s.ID.String()),
			detailField("Name", s.Name),
			detailField("Age", fmt.Sprintf("%d", s.Age)),
			detailField("Program", s.Program),
			detailLabelStyle.Render("Score") + ScoreStyle(s.Score).Render(fmt.Sprintf("%.2f", s.Score)),
		}
		sections = append(sections, detailBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, fields...)))
	case m.state.Loading:
		sections = append(sections, emptyStateStyle.Render(m.spinner.View()+" Loading student..."))
	default:
		sections = append(sections, emptyStateStyle.Render("No student selected"))
	}

	sections = append(sections, m.renderFooter([]string{"d: delete", "esc: back", "?: help", "q: quit"}))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func detailField(label, value string) string {
	return detailLabelStyle.Render(label) + detailValueStyle.Render(value)
}

func (m Model) renderHelpView() string {
	bindings := [][2]string{
		{m.glyph("↑/↓", "up/down") + ", j/k", "Move selection"},
		{"enter", "Load student details"},
		{"esc", "Back to list"},
		{"r", "Reload all students"},
		{"d", "Delete selected student"},
		{"x", "Dismiss error or success banner"},
		{"?", "Toggle this help"},
		{"q, ctrl+c", "Quit"},
	}

	lines := []string{titleStyle.Render("Keyboard shortcuts"), ""}
	for _, b := range bindings {
		lines = append(lines, helpKeyStyle.Render(b[0])+helpDescStyle.Render(b[1]))
	}

	box := helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderConfirmView() string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		confirmTitleStyle.Render(m.confirmMessage),
		"",
		"[y] confirm    [n] cancel",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, confirmBoxStyle.Render(body))
}

func (m Model) glyph(unicode, fallback string) string {
	if m.useUnicode {
		return unicode
	}
	return fallback
}
