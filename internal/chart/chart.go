// Package chart draws dashboard charts as terminal text.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
)

const (
	// DefaultHeight is the number of plot rows used when none is given.
	DefaultHeight = 8
	minPlotWidth  = 10
	axisSeparator = " │"
	legendMarker  = "●"
)

// Render draws c into at most width columns. height is the number of plot rows.
func Render(c model.Chart, width, height int) (string, error) {
	if height <= 0 {
		height = DefaultHeight
	}
	switch c.Kind {
	case model.ChartLine, model.ChartArea:
		return renderCartesian(c, width, height, false)
	case model.ChartBar:
		return renderCartesian(c, width, height, true)
	case model.ChartShare:
		return renderShare(c.Slices, width)
	case model.ChartStat:
		return renderStat(c.Stat), nil
	}
	return "", fmt.Errorf("chart: unsupported kind %s", c.Kind)
}

type series struct {
	name   string
	kind   model.MarkKind
	color  string
	values []float64
}

func collectSeries(c model.Chart) ([]series, error) {
	if len(c.Marks) == 0 {
		return nil, fmt.Errorf("chart: no marks")
	}
	if len(c.Data.Samples) == 0 {
		return nil, fmt.Errorf("chart: dataset %q is empty", c.Data.Name)
	}
	out := make([]series, 0, len(c.Marks))
	for _, mark := range c.Marks {
		values, ok := c.Data.Column(mark.Key)
		if !ok {
			return nil, fmt.Errorf("chart: field %q missing from %s", mark.Key, c.Data.Name)
		}
		out = append(out, series{name: mark.Key, kind: mark.Kind, color: mark.Color, values: values})
	}
	return out, nil
}

// yRange returns the axis bounds. Without a fixed domain the axis starts at zero.
func yRange(all []series, domain *model.Domain) (float64, float64) {
	if domain != nil && domain.Max > domain.Min {
		return domain.Min, domain.Max
	}
	minVal, maxVal := 0.0, 0.0
	for _, s := range all {
		for _, v := range s.values {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if minVal < 0 {
		minVal = -niceCeil(-minVal)
	}
	maxVal = niceCeil(maxVal)
	if math.Abs(maxVal-minVal) < 1e-9 {
		maxVal = minVal + 1
	}
	return minVal, maxVal
}

var niceSteps = []float64{1, 1.2, 1.5, 2, 2.5, 3, 4, 5, 6, 8, 10}

func niceCeil(v float64) float64 {
	if v <= 0 {
		return 0
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	f := v / exp
	for _, step := range niceSteps {
		if f <= step+1e-9 {
			return step * exp
		}
	}
	return 10 * exp
}

func formatTick(v float64) string {
	if math.Abs(v-math.Round(v)) < 1e-9 {
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func axisLabels(minVal, maxVal float64, height int) ([]string, int) {
	labels := make([]string, height)
	if height <= 0 {
		return labels, 0
	}
	labels[0] = formatTick(maxVal)
	if height > 2 {
		labels[height/2] = formatTick(minVal + (maxVal-minVal)/2)
	}
	if height > 1 {
		labels[height-1] = formatTick(minVal)
	}
	w := 0
	for _, l := range labels {
		if lw := lipgloss.Width(l); lw > w {
			w = lw
		}
	}
	return labels, w
}

func renderLegend(all []series, width int) string {
	parts := make([]string, 0, len(all))
	for _, s := range all {
		parts = append(parts, theme.Fg(s.color).Render(legendMarker)+" "+theme.AxisStyle.Render(s.name))
	}
	line := strings.Join(parts, "  ")
	if width > 0 && lipgloss.Width(line) > width {
		return strings.Join(parts, "\n")
	}
	return line
}

func renderStat(s model.Stat) string {
	color := s.Color
	if color == "" {
		color = theme.Text
	}
	value := theme.Fg(color).Bold(true).Render(s.Value)
	if s.Unit != "" {
		value += theme.SubtitleStyle.Render(s.Unit)
	}
	if s.Note == "" {
		return value
	}
	return value + "\n" + theme.SubtitleStyle.Render(s.Note)
}
