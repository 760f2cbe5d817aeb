package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/truephase/tpdash/internal/chart"
	"github.com/truephase/tpdash/internal/dashboard"
	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
)

const (
	minTileWidth = 22
	minCardWidth = 36
	cardGap      = 1
)

// KPITile renders a headline tile exactly width columns wide.
func KPITile(kpi model.KPI, width int) string {
	inner := width - theme.TileStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	lines := []string{
		theme.TileLabelStyle.Render(truncate(kpi.Label, inner)),
		theme.TileValueStyle.Render(truncate(kpi.Value, inner)),
	}
	if kpi.Sub != "" {
		lines = append(lines, theme.TileSubStyle.Render(truncate(kpi.Sub, inner)))
	}
	return theme.TileStyle.Width(width - theme.TileStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// Card renders a titled container around body. height pads the body to a common row height.
func Card(title, right, body string, width, height int) string {
	inner := cardInnerWidth(width)
	var head string
	if title != "" || right != "" {
		rightWidth := lipgloss.Width(right)
		titleText := truncate(title, maxInt(1, inner-rightWidth-1))
		gap := inner - lipgloss.Width(titleText) - rightWidth
		if gap < 1 {
			gap = 1
		}
		head = theme.CardTitleStyle.Render(titleText) + strings.Repeat(" ", gap) + theme.CardRightStyle.Render(right)
		head = strings.TrimRight(head, " ") + "\n\n"
	}
	style := theme.CardStyle.Width(width - theme.CardStyle.GetHorizontalBorderSize())
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(head + body)
}

func cardInnerWidth(width int) int {
	inner := width - theme.CardStyle.GetHorizontalFrameSize()
	if inner < 1 {
		return 1
	}
	return inner
}

// RenderSection draws a section's tiles and cards into width columns.
func RenderSection(section model.Section, width, plotHeight int) string {
	layout := dashboard.Layout(section)
	tiles := kpiGrid(layout.KPIs, width)
	cards := cardGrid(layout.Cards, width, plotHeight)
	return tiles + "\n\n" + cards
}

func kpiGrid(kpis []model.KPI, width int) string {
	perRow := 1
	switch {
	case width >= 4*minTileWidth:
		perRow = 4
	case width >= 2*minTileWidth:
		perRow = 2
	}
	tileWidth := width / perRow
	rows := make([]string, 0, (len(kpis)+perRow-1)/perRow)
	for i := 0; i < len(kpis); i += perRow {
		end := minInt(i+perRow, len(kpis))
		tiles := make([]string, 0, end-i)
		for _, kpi := range kpis[i:end] {
			tiles = append(tiles, KPITile(kpi, tileWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cardGrid(cards []model.Card, width, plotHeight int) string {
	perRow := 1
	if width >= 3*minCardWidth+2*cardGap {
		perRow = 3
	}
	cardWidth := (width - (perRow-1)*cardGap) / perRow
	rows := make([]string, 0, len(cards))
	for i := 0; i < len(cards); i += perRow {
		end := minInt(i+perRow, len(cards))
		bodies := make([]string, 0, end-i)
		for _, c := range cards[i:end] {
			bodies = append(bodies, cardBody(c, cardInnerWidth(cardWidth), plotHeight))
		}
		height := 0
		if perRow > 1 {
			for j, c := range cards[i:end] {
				h := lipgloss.Height(bodies[j])
				if c.Title != "" || c.Right != "" {
					h += 2
				}
				height = maxInt(height, h)
			}
		}
		parts := make([]string, 0, 2*(end-i))
		for j, c := range cards[i:end] {
			if j > 0 {
				parts = append(parts, strings.Repeat(" ", cardGap))
			}
			parts = append(parts, Card(c.Title, c.Right, bodies[j], cardWidth, height))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cardBody(c model.Card, width, plotHeight int) string {
	out, err := chart.Render(c.Chart, width, plotHeight)
	if err != nil {
		return theme.ErrorStyle.Render(truncate(err.Error(), width))
	}
	return out
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
