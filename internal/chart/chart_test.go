package chart

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/truephase/tpdash/internal/dataset"
	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
)

func accuracyChart() model.Chart {
	return model.Chart{
		Kind:  model.ChartLine,
		Data:  dataset.AI(),
		Marks: []model.Mark{{Key: dataset.Accuracy, Kind: model.MarkLine, Color: theme.Accent}},
	}
}

func TestRenderLineChart(t *testing.T) {
	out, err := Render(accuracyChart(), 40, 6)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 6+3 {
		t.Fatalf("expected %d lines, got %d:\n%s", 9, len(lines), out)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "100") {
		t.Fatalf("expected top tick 100, got %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[5]), "0") {
		t.Fatalf("expected bottom tick 0, got %q", lines[5])
	}
	for _, want := range []string{"W1", "W2", "W3", "W4", "accuracy"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	for i, line := range lines[:7] {
		if w := lipgloss.Width(line); w > 40 {
			t.Fatalf("line %d is %d columns wide, limit 40", i, w)
		}
	}
}

func TestRenderUsesFixedDomain(t *testing.T) {
	c := model.Chart{
		Kind:   model.ChartArea,
		Data:   dataset.Reviews(),
		Marks:  []model.Mark{{Key: dataset.AvgRating, Kind: model.MarkArea, Color: theme.Accent2}},
		Domain: &model.Domain{Min: 4, Max: 5},
	}
	out, err := Render(c, 40, 6)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	lines := strings.Split(out, "\n")
	if got := strings.Fields(lines[0])[0]; got != "5" {
		t.Fatalf("expected top tick 5, got %q", got)
	}
	if got := strings.Fields(lines[3])[0]; got != "4.5" {
		t.Fatalf("expected mid tick 4.5, got %q", got)
	}
	if got := strings.Fields(lines[5])[0]; got != "4" {
		t.Fatalf("expected bottom tick 4, got %q", got)
	}
}

func TestRenderBars(t *testing.T) {
	c := model.Chart{
		Kind: model.ChartBar,
		Data: dataset.Automation(),
		Marks: []model.Mark{
			{Key: dataset.ErrorsBefore, Kind: model.MarkBar, Color: theme.Red},
			{Key: dataset.ErrorsAfter, Kind: model.MarkBar, Color: theme.Accent},
		},
	}
	out, err := Render(c, 50, 5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "█") {
		t.Fatalf("expected full blocks in bar chart:\n%s", out)
	}
	for _, want := range []string{"W1", "W4", "errorsBefore", "errorsAfter"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderShare(t *testing.T) {
	out, err := Render(model.Chart{Kind: model.ChartShare, Slices: dataset.Sentiment()}, 50, 0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	lines := strings.Split(out, "\n")
	if got := lipgloss.Width(lines[0]); got != 50 {
		t.Fatalf("expected a 50 column bar, got %d", got)
	}
	for _, want := range []string{"Positive", "Neutral", "Negative", "72", "18", "10"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderStat(t *testing.T) {
	out, err := Render(model.Chart{Kind: model.ChartStat, Stat: model.Stat{Value: "£833", Unit: "/month"}}, 30, 0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "£833/month") {
		t.Fatalf("unexpected stat output %q", out)
	}
	out, err = Render(model.Chart{Kind: model.ChartStat, Stat: model.Stat{Value: "↓ 92%", Note: "vs. baseline month"}}, 30, 0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "↓ 92%") || !strings.Contains(out, "vs. baseline month") {
		t.Fatalf("unexpected stat output %q", out)
	}
}

func TestRenderErrors(t *testing.T) {
	noMarks := model.Chart{Kind: model.ChartLine, Data: dataset.AI()}
	if _, err := Render(noMarks, 40, 5); err == nil {
		t.Fatalf("expected error for chart without marks")
	}
	missing := accuracyChart()
	missing.Marks[0].Key = "calls"
	if _, err := Render(missing, 40, 5); err == nil {
		t.Fatalf("expected error for missing field")
	}
	if _, err := Render(model.Chart{Kind: model.ChartShare}, 40, 5); err == nil {
		t.Fatalf("expected error for empty breakdown")
	}
	if _, err := Render(model.Chart{Kind: model.ChartKind(42)}, 40, 5); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestApportion(t *testing.T) {
	got, err := apportion([]float64{72, 18, 10}, 50)
	if err != nil {
		t.Fatalf("apportion failed: %v", err)
	}
	if !reflect.DeepEqual(got, []int{36, 9, 5}) {
		t.Fatalf("unexpected columns %v", got)
	}
	got, err = apportion([]float64{1, 1, 1}, 10)
	if err != nil {
		t.Fatalf("apportion failed: %v", err)
	}
	if !reflect.DeepEqual(got, []int{4, 3, 3}) {
		t.Fatalf("unexpected columns %v", got)
	}
	if _, err := apportion([]float64{0, 0}, 10); err == nil {
		t.Fatalf("expected error for zero total")
	}
}

func TestNiceCeil(t *testing.T) {
	cases := map[float64]float64{312: 400, 94: 100, 70: 80, 250: 250, 0.86: 1}
	for in, want := range cases {
		if got := niceCeil(in); got < want-1e-9 || got > want+1e-9 {
			t.Fatalf("niceCeil(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{100: "100", 4.5: "4.5", 0.5: "0.5", 0: "0"}
	for in, want := range cases {
		if got := formatTick(in); got != want {
			t.Fatalf("formatTick(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestXAxisLabelsSkipOverlap(t *testing.T) {
	if got := xAxisLabels([]string{"Mon", "Tue"}, []int{1, 2}, 10); got != "Mon" {
		t.Fatalf("expected overlapping label to be dropped, got %q", got)
	}
	if got := xAxisLabels([]string{"W1", "W2"}, []int{0, 9}, 10); got != "W1      W2" {
		t.Fatalf("unexpected labels %q", got)
	}
}
