package dashboard

import (
	"reflect"
	"testing"

	"github.com/truephase/tpdash/internal/dataset"
	"github.com/truephase/tpdash/internal/model"
)

func kpiLabels(l model.Layout) []string {
	out := make([]string, len(l.KPIs))
	for i, k := range l.KPIs {
		out[i] = k.Label
	}
	return out
}

func cardTitles(l model.Layout) []string {
	out := make([]string, len(l.Cards))
	for i, c := range l.Cards {
		out[i] = c.Title
	}
	return out
}

func TestLayoutContentPerSection(t *testing.T) {
	cases := []struct {
		section model.Section
		heading string
		kpis    []string
		cards   []string
	}{
		{
			section: model.SectionOverview,
			heading: "Overview",
			kpis:    []string{"Calls Answered by AI", "Hours Saved", "Avg Rating", "Model Accuracy"},
			cards:   []string{"Voice Volume & Bookings", "Reviews Collected by Platform", "Automation: Tasks & Error Reduction"},
		},
		{
			section: model.SectionVoice,
			heading: "Voice Agent Analytics",
			kpis:    []string{"Response Rate", "Avg Response Time", "Missed Calls Prevented", "Conversions / Bookings"},
			cards:   []string{"Total Calls Handled", "Missed Calls Prevented (Before vs After)", "Bookings Made"},
		},
		{
			section: model.SectionReviews,
			heading: "Review Management",
			kpis:    []string{"Response Rate to Reviews", "Reviews this Month", "Avg Rating Trend", "Top Keyword"},
			cards:   []string{"Reviews Collected by Platform", "Average Rating Trend", "Sentiment Breakdown"},
		},
		{
			section: model.SectionAutomation,
			heading: "Business Automation Workflows",
			kpis:    []string{"Tasks Automated", "Hours Saved", "Error Reduction", "Success Rate"},
			cards:   []string{"Tasks Automated", "Error Reduction (%) — Before vs After", "Automation ROI Calculator (demo)"},
		},
		{
			section: model.SectionAI,
			heading: "AI Performance & Continuous Improvement",
			kpis:    []string{"Model Accuracy", "Avg Confidence", "Retrains", "Incidents"},
			cards:   []string{"Model Accuracy Trend", "Prediction Confidence", "AI Downtime / Errors"},
		},
	}
	for _, tc := range cases {
		l := Layout(tc.section)
		if l.Section != tc.section {
			t.Fatalf("%s: expected section %s, got %s", tc.section, tc.section, l.Section)
		}
		if l.Heading != tc.heading {
			t.Fatalf("%s: expected heading %q, got %q", tc.section, tc.heading, l.Heading)
		}
		if got := kpiLabels(l); !reflect.DeepEqual(got, tc.kpis) {
			t.Fatalf("%s: unexpected KPI labels %q", tc.section, got)
		}
		if got := cardTitles(l); !reflect.DeepEqual(got, tc.cards) {
			t.Fatalf("%s: unexpected card titles %q", tc.section, got)
		}
	}
}

func TestVoiceResponseRateLiteral(t *testing.T) {
	l := Layout(model.SectionVoice)
	if l.KPIs[0].Label != "Response Rate" || l.KPIs[0].Value != "86%" || l.KPIs[0].Sub != "Answered ÷ Total" {
		t.Fatalf("unexpected first voice KPI: %+v", l.KPIs[0])
	}
}

func TestAccuracyTrendBoundToWeeklySeries(t *testing.T) {
	card := Layout(model.SectionAI).Cards[0]
	if card.Title != "Model Accuracy Trend" {
		t.Fatalf("unexpected card %q", card.Title)
	}
	if got := card.Chart.Data.Labels(); !reflect.DeepEqual(got, []string{"W1", "W2", "W3", "W4"}) {
		t.Fatalf("unexpected periods %q", got)
	}
	values, ok := card.Chart.Data.Column(card.Chart.Marks[0].Key)
	if !ok {
		t.Fatalf("expected accuracy column")
	}
	if !reflect.DeepEqual(values, []float64{86, 89, 92, 94}) {
		t.Fatalf("unexpected accuracy values %v", values)
	}
}

func TestAxisDomains(t *testing.T) {
	rating := Layout(model.SectionReviews).Cards[1].Chart
	if rating.Domain == nil || rating.Domain.Min != 4 || rating.Domain.Max != 5 {
		t.Fatalf("expected rating domain 4..5, got %+v", rating.Domain)
	}
	confidence := Layout(model.SectionAI).Cards[1].Chart
	if confidence.Domain == nil || confidence.Domain.Min != 0 || confidence.Domain.Max != 1 {
		t.Fatalf("expected confidence domain 0..1, got %+v", confidence.Domain)
	}
}

func TestROICardRightNote(t *testing.T) {
	card := Layout(model.SectionAutomation).Cards[2]
	if card.Right != "Assumes £25/hr" {
		t.Fatalf("unexpected right note %q", card.Right)
	}
	if card.Chart.Kind != model.ChartStat || card.Chart.Stat.Value != "£833" || card.Chart.Stat.Unit != "/month" {
		t.Fatalf("unexpected ROI stat %+v", card.Chart.Stat)
	}
}

func TestMarksReferenceExistingColumns(t *testing.T) {
	for _, s := range model.Sections() {
		for _, card := range Layout(s).Cards {
			for _, mark := range card.Chart.Marks {
				if _, ok := card.Chart.Data.Column(mark.Key); !ok {
					t.Fatalf("%s/%s: field %q missing from %s", s, card.Title, mark.Key, card.Chart.Data.Name)
				}
			}
		}
	}
}

func TestLayoutIsStable(t *testing.T) {
	a := Layout(model.SectionReviews)
	a.Cards[2].Chart.Slices[0].Value = 0
	b := Layout(model.SectionReviews)
	if b.Cards[2].Chart.Slices[0].Value != 72 {
		t.Fatalf("expected literal sentiment share to survive caller mutation")
	}
	if !reflect.DeepEqual(Layout(model.SectionVoice), Layout(model.SectionVoice)) {
		t.Fatalf("expected identical layouts on repeated calls")
	}
	if len(dataset.Voice().Samples) != 5 {
		t.Fatalf("expected five voice samples")
	}
}
