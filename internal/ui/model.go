// Package ui provides the Bubble Tea dashboard interface.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/truephase/tpdash/internal/browser"
	"github.com/truephase/tpdash/internal/chart"
	"github.com/truephase/tpdash/internal/dashboard"
	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
)

const (
	// WideBreakpoint is the width from which the sidebar is always visible.
	WideBreakpoint = 100
	// TitleBreakpoint is the width from which the header shows the product title.
	TitleBreakpoint = 60

	sidebarWidth   = 24
	headerHeight   = 2
	footerHeight   = 1
	mainPadLeft    = 2
	mainPadRight   = 1
	mainHeadHeight = 3
	toggleOpen     = "✕"
	toggleClosed   = "☰"
)

// bookingResultMsg reports the outcome of the fire-and-forget booking link.
type bookingResultMsg struct {
	url string
	err error
}

// Model implements the Bubble Tea dashboard UI.
type Model struct {
	section  model.Section
	menuOpen bool

	cfg    model.Config
	opener browser.Opener
	logger zerolog.Logger

	keys    keyMap
	help    help.Model
	content viewport.Model

	width  int
	height int
}

// NewModel constructs a dashboard model showing cfg.Section.
func NewModel(cfg model.Config, opener browser.Opener, logger zerolog.Logger) *Model {
	if !cfg.Section.Valid() {
		cfg.Section = model.SectionOverview
	}
	if cfg.PlotHeight <= 0 {
		cfg.PlotHeight = chart.DefaultHeight
	}
	h := help.New()
	h.Styles.ShortKey = theme.HelpStyle.Bold(true)
	h.Styles.ShortDesc = theme.HelpStyle
	h.Styles.ShortSeparator = theme.HelpStyle
	return &Model{
		section: cfg.Section,
		cfg:     cfg,
		opener:  opener,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    h,
		content: viewport.New(0, 0),
	}
}

// Section returns the active section.
func (m *Model) Section() model.Section {
	return m.section
}

// MenuOpen reports whether the navigation menu is open.
func (m *Model) MenuOpen() bool {
	return m.menuOpen
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.logger.Info().Str("section", m.section.ID()).Msg("dashboard started")
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshContent()
		return m, nil
	case bookingResultMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("url", msg.url).Msg("failed to open booking link")
		} else {
			m.logger.Info().Str("url", msg.url).Msg("opened booking link")
		}
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Menu):
			m.toggleMenu()
			return m, nil
		case key.Matches(msg, m.keys.Close):
			m.closeMenu()
			return m, nil
		case key.Matches(msg, m.keys.Book):
			return m, m.openBooking()
		case key.Matches(msg, m.keys.Jump):
			idx := int(msg.String()[0] - '1')
			m.selectSection(model.Sections()[idx])
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.moveSection(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.moveSection(-1)
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.content.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.content.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, bodyHeight, _ := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) toggleMenu() {
	m.menuOpen = !m.menuOpen
	m.logger.Debug().Bool("open", m.menuOpen).Msg("menu toggled")
}

func (m *Model) closeMenu() {
	if !m.menuOpen {
		return
	}
	m.menuOpen = false
	m.logger.Debug().Msg("menu closed")
}

func (m *Model) selectSection(s model.Section) {
	m.menuOpen = false
	if s == m.section {
		return
	}
	m.section = s
	m.logger.Debug().Str("section", s.ID()).Msg("section selected")
	m.refreshContent()
	m.content.GotoTop()
}

func (m *Model) moveSection(delta int) {
	sections := model.Sections()
	count := len(sections)
	next := (int(m.section) + delta + count) % count
	m.selectSection(sections[next])
}

func (m *Model) openBooking() tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		if opener == nil {
			return bookingResultMsg{url: dashboard.BookingURL}
		}
		return bookingResultMsg{url: dashboard.BookingURL, err: opener.Open(dashboard.BookingURL)}
	}
}

func (m *Model) wide() bool {
	return m.width >= WideBreakpoint
}

func (m *Model) sidebarVisible() bool {
	return m.wide() || m.menuOpen
}

func (m *Model) layoutHeights() (header, body, footer int) {
	body = m.height - headerHeight - footerHeight
	if body < 1 {
		body = 1
	}
	return headerHeight, body, footerHeight
}

func (m *Model) mainWidth() int {
	if m.wide() {
		return maxInt(1, m.width-sidebarWidth)
	}
	return m.width
}

func (m *Model) contentWidth() int {
	return maxInt(1, m.mainWidth()-mainPadLeft-mainPadRight)
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.content.Width = m.contentWidth()
	m.content.Height = maxInt(1, bodyHeight-mainHeadHeight)
	m.help.Width = m.width
}

func (m *Model) refreshContent() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.content.SetContent(RenderSection(m.section, m.contentWidth(), m.cfg.PlotHeight))
}

func (m *Model) renderHeader() string {
	left := ""
	if !m.wide() {
		glyph := toggleClosed
		if m.menuOpen {
			glyph = toggleOpen
		}
		left = theme.ToggleStyle.Render(glyph) + " "
	}
	left += theme.LogoStyle.Render(dashboard.Wordmark)
	if m.width >= TitleBreakpoint {
		left += "  " + theme.TitleStyle.Render(dashboard.Product)
	}
	cta := renderCTA()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(cta)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + cta
	return theme.HeaderStyle.Width(m.width).Render(truncateStyled(line, m.width))
}

func renderCTA() string {
	return theme.CTAStyle.Render(dashboard.CTALabel)
}

func renderBrand() string {
	content := theme.LogoStyle.Render(dashboard.Wordmark) + "\n" + theme.TaglineStyle.Render(dashboard.Tagline)
	return theme.SideHeadStyle.Width(sidebarWidth - 1).Render(content)
}

// navTop is the row offset of the first nav item inside the sidebar.
func navTop() int {
	return lipgloss.Height(renderBrand()) + 1
}

func (m *Model) renderSidebar(height int) string {
	lines := []string{renderBrand(), ""}
	itemWidth := sidebarWidth - 3
	for i, s := range model.Sections() {
		if i > 0 {
			lines = append(lines, "")
		}
		style := theme.InactiveNavStyle
		if s == m.section {
			style = theme.ActiveNavStyle
		}
		lines = append(lines, " "+style.Width(itemWidth).Render(truncate(s.Label(), itemWidth-2)))
	}
	inner := fitLines(strings.Join(lines, "\n"), sidebarWidth-1, height)
	return theme.SidebarStyle.Render(inner)
}

func (m *Model) renderMain(width, height int) string {
	head := theme.HeadingStyle.Render(truncate(m.section.Heading(), m.contentWidth())) + "\n" +
		theme.SubtitleStyle.Render(truncate(dashboard.Subtitle, m.contentWidth())) + "\n"
	block := head + "\n" + m.content.View()
	block = lipgloss.NewStyle().PaddingLeft(mainPadLeft).Render(block)
	return fitLines(block, width, height)
}

func (m *Model) renderBackdrop(width, height int) string {
	line := theme.BackdropStyle.Render(strings.Repeat("░", maxInt(0, width)))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(height int) string {
	switch {
	case m.wide():
		sidebar := m.renderSidebar(height)
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.renderMain(m.mainWidth(), height))
	case m.menuOpen:
		sidebar := m.renderSidebar(height)
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.renderBackdrop(m.width-sidebarWidth, height))
	default:
		return m.renderMain(m.width, height)
	}
}

func (m *Model) renderFooter() string {
	return m.help.View(m.keys)
}
