package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/truephase/tpdash/internal/model"
)

// hitTarget names what sits under a mouse click.
type hitTarget int

const (
	hitNone hitTarget = iota
	hitToggle
	hitCTA
	hitNav
	hitBackdrop
)

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	target, section := m.hitTest(msg.X, msg.Y)
	switch target {
	case hitToggle:
		m.toggleMenu()
	case hitCTA:
		return m, m.openBooking()
	case hitNav:
		m.selectSection(section)
	case hitBackdrop:
		m.closeMenu()
	}
	return m, nil
}

// hitTest maps a screen cell to the control drawn there.
func (m *Model) hitTest(x, y int) (hitTarget, model.Section) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return hitNone, 0
	}
	if y == 0 {
		if !m.wide() && x < lipgloss.Width(toggleClosed) {
			return hitToggle, 0
		}
		ctaWidth := lipgloss.Width(renderCTA())
		if x >= m.width-ctaWidth {
			return hitCTA, 0
		}
		return hitNone, 0
	}
	_, bodyHeight, _ := m.layoutHeights()
	bodyY := y - headerHeight
	if bodyY < 0 || bodyY >= bodyHeight {
		return hitNone, 0
	}
	if !m.sidebarVisible() {
		return hitNone, 0
	}
	if x >= sidebarWidth {
		if !m.wide() {
			return hitBackdrop, 0
		}
		return hitNone, 0
	}
	offset := bodyY - navTop()
	if offset < 0 || offset%2 != 0 {
		return hitNone, 0
	}
	idx := offset / 2
	sections := model.Sections()
	if idx >= len(sections) {
		return hitNone, 0
	}
	return hitNav, sections[idx]
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

// fitLines clips or pads s to exactly width columns and height rows.
func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = padLine(truncateStyled(line, width), width)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// truncateStyled cuts a line that may carry escape sequences to width cells.
func truncateStyled(line string, width int) string {
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "")
}
