package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
)

const maxBarWidth = 3

var barGlyphs = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// plotArea is the drawn grid of a cartesian chart, before axes are attached.
type plotArea struct {
	rows    []string
	centers []int
	width   int
}

func renderCartesian(c model.Chart, width, height int, bars bool) (string, error) {
	all, err := collectSeries(c)
	if err != nil {
		return "", err
	}
	labels := c.Data.Labels()
	minVal, maxVal := yRange(all, c.Domain)
	ticks, tickWidth := axisLabels(minVal, maxVal, height)
	axisWidth := tickWidth + lipgloss.Width(axisSeparator)
	plotWidth := width - axisWidth
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}

	var area plotArea
	if bars {
		area = drawBars(all, len(labels), minVal, maxVal, plotWidth, height)
	} else {
		area = drawLines(all, len(labels), minVal, maxVal, plotWidth, height)
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		b.WriteString(theme.AxisStyle.Render(fmt.Sprintf("%*s%s", tickWidth, ticks[y], axisSeparator)))
		b.WriteString(area.rows[y])
		b.WriteByte('\n')
	}
	b.WriteString(theme.AxisStyle.Render(strings.Repeat(" ", tickWidth) + " └" + strings.Repeat("─", area.width)))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", axisWidth))
	b.WriteString(theme.AxisStyle.Render(xAxisLabels(labels, area.centers, area.width)))
	b.WriteByte('\n')
	b.WriteString(renderLegend(all, width))
	return b.String(), nil
}

func drawLines(all []series, n int, minVal, maxVal float64, plotWidth, height int) plotArea {
	dotWidth := plotWidth * 2
	dotHeight := height * 4
	xs := make([]int, n)
	for i := range xs {
		xs[i] = pointX(i, n, dotWidth)
	}

	layers := make([][][]uint8, len(all))
	for si, s := range all {
		cells := makeCells(height, plotWidth)
		top := make([]int, dotWidth)
		for i := range top {
			top[i] = -1
		}
		plot := func(dx, dy int) {
			setBrailleDot(cells, dx, dy)
			if dx >= 0 && dx < dotWidth && (top[dx] < 0 || dy < top[dx]) {
				top[dx] = dy
			}
		}
		prevX, prevY := -1, -1
		for i, v := range s.values {
			px := xs[i]
			py := valueToRow(v, minVal, maxVal, dotHeight)
			if prevX >= 0 {
				drawLine(prevX, prevY, px, py, plot)
			} else {
				plot(px, py)
			}
			prevX, prevY = px, py
		}
		if s.kind == model.MarkArea {
			shadeBelow(cells, top, dotHeight)
		}
		layers[si] = cells
	}

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < plotWidth; x++ {
			mask, idx := composeCell(layers, x, y)
			if mask == 0 {
				row.WriteByte(' ')
				continue
			}
			row.WriteString(theme.Fg(all[idx].color).Render(string(brailleFromMask(mask))))
		}
		rows[y] = row.String()
	}
	centers := make([]int, n)
	for i, x := range xs {
		centers[i] = x / 2
	}
	return plotArea{rows: rows, centers: centers, width: plotWidth}
}

func drawBars(all []series, n int, minVal, maxVal float64, plotWidth, height int) plotArea {
	m := len(all)
	if n == 0 || m == 0 {
		return plotArea{rows: make([]string, height), width: plotWidth}
	}
	groupWidth := plotWidth / n
	if groupWidth < m+1 {
		groupWidth = m + 1
	}
	barWidth := (groupWidth - 1) / m
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 1 {
		barWidth = 1
	}
	width := groupWidth * n
	if width < plotWidth {
		width = plotWidth
	}

	type cell struct {
		glyph rune
		color string
	}
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x].glyph = ' '
		}
	}

	centers := make([]int, n)
	for g := 0; g < n; g++ {
		groupStart := g * groupWidth
		centers[g] = groupStart + groupWidth/2
		start := groupStart + (groupWidth-m*barWidth)/2
		for si, s := range all {
			if g >= len(s.values) {
				continue
			}
			eighths := barEighths(s.values[g], minVal, maxVal, height)
			for y := 0; y < height; y++ {
				level := height - 1 - y
				fill := eighths - level*8
				if fill <= 0 {
					continue
				}
				if fill > 8 {
					fill = 8
				}
				for x := start + si*barWidth; x < start+(si+1)*barWidth && x < width; x++ {
					grid[y][x] = cell{glyph: barGlyphs[fill], color: s.color}
				}
			}
		}
	}

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var row strings.Builder
		for _, c := range grid[y] {
			if c.color == "" {
				row.WriteRune(c.glyph)
				continue
			}
			row.WriteString(theme.Fg(c.color).Render(string(c.glyph)))
		}
		rows[y] = row.String()
	}
	return plotArea{rows: rows, centers: centers, width: width}
}

func barEighths(v, minVal, maxVal float64, height int) int {
	if maxVal <= minVal {
		return 0
	}
	pos := (v - minVal) / (maxVal - minVal)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return int(math.Round(pos * float64(height*8)))
}

// xAxisLabels spreads period labels under their columns, dropping any that would overlap.
func xAxisLabels(labels []string, centers []int, width int) string {
	buf := []rune(strings.Repeat(" ", width))
	nextFree := 0
	for i, label := range labels {
		if i >= len(centers) {
			break
		}
		label = runewidth.Truncate(label, width, "…")
		lw := runewidth.StringWidth(label)
		start := centers[i] - lw/2
		if start < 0 {
			start = 0
		}
		if start+lw > width {
			start = width - lw
		}
		if start < nextFree {
			continue
		}
		for j, r := range []rune(label) {
			if start+j < len(buf) {
				buf[start+j] = r
			}
		}
		nextFree = start + lw + 1
	}
	return strings.TrimRight(string(buf), " ")
}

func pointX(i, n, dotWidth int) int {
	if n <= 1 {
		return dotWidth / 2
	}
	return int(math.Round(float64(i) * float64(dotWidth-1) / float64(n-1)))
}

func shadeBelow(cells [][]uint8, top []int, dotHeight int) {
	for x, y0 := range top {
		if y0 < 0 || x%2 != 0 {
			continue
		}
		for y := y0 + 2; y < dotHeight; y += 2 {
			setBrailleDot(cells, x, y)
		}
	}
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]uint8, width)
	}
	return cells
}

func composeCell(layers [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	colorIdx := -1
	for i, cells := range layers {
		if y < 0 || y >= len(cells) {
			continue
		}
		if x < 0 || x >= len(cells[y]) {
			continue
		}
		cellMask := cells[y][x]
		if cellMask == 0 {
			continue
		}
		if colorIdx == -1 {
			colorIdx = i
		}
		mask |= cellMask
	}
	return mask, colorIdx
}

func valueToRow(v, minVal, maxVal float64, height int) int {
	if height <= 1 || maxVal <= minVal {
		return 0
	}
	pos := (v - minVal) / (maxVal - minVal)
	row := int(math.Round((1 - pos) * float64(height-1)))
	if row < 0 {
		row = 0
	}
	if row >= height {
		row = height - 1
	}
	return row
}

func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func setBrailleDot(cells [][]uint8, x, y int) {
	if y < 0 || x < 0 {
		return
	}
	cellY := y / 4
	cellX := x / 2
	if cellY >= len(cells) || cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleDotMask(x%2, y%4)
}

func brailleDotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
