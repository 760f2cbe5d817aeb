package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
)

// renderShare draws a breakdown as one stacked bar with a legend underneath.
func renderShare(slices []model.Slice, width int) (string, error) {
	if len(slices) == 0 {
		return "", fmt.Errorf("chart: no slices")
	}
	values := make([]float64, len(slices))
	for i, s := range slices {
		if s.Value < 0 {
			return "", fmt.Errorf("chart: slice %q has negative value", s.Name)
		}
		values[i] = s.Value
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}
	cols, err := apportion(values, width)
	if err != nil {
		return "", err
	}

	var bar strings.Builder
	for i, s := range slices {
		if cols[i] == 0 {
			continue
		}
		bar.WriteString(theme.Fg(s.Color).Render(strings.Repeat("█", cols[i])))
	}

	rows := make([][]string, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, []string{
			theme.Fg(s.Color).Render(legendMarker) + " " + s.Name,
			formatTick(s.Value),
		})
	}
	legend := alignColumns(nil, rows, map[int]bool{1: true})
	return bar.String() + "\n\n" + strings.Join(legend, "\n"), nil
}

// apportion splits width columns proportionally using largest remainders.
func apportion(values []float64, width int) ([]int, error) {
	total := 0.0
	for _, v := range values {
		total += v
	}
	if total <= 0 {
		return nil, fmt.Errorf("chart: breakdown total must be positive")
	}
	cols := make([]int, len(values))
	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, len(values))
	used := 0
	for i, v := range values {
		exact := v / total * float64(width)
		cols[i] = int(math.Floor(exact))
		used += cols[i]
		rems[i] = rem{idx: i, frac: exact - float64(cols[i])}
	}
	sort.SliceStable(rems, func(i, j int) bool {
		return rems[i].frac > rems[j].frac
	})
	for i := 0; used < width && i < len(rems); i++ {
		cols[rems[i].idx]++
		used++
	}
	return cols, nil
}
