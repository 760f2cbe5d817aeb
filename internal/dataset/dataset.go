// Package dataset holds the literal demo series shown by the dashboard.
package dataset

import (
	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
)

// Field keys.
const (
	Calls        = "calls"
	Answered     = "answered"
	Bookings     = "bookings"
	Google       = "google"
	Facebook     = "fb"
	Trustpilot   = "tp"
	AvgRating    = "avg"
	Tasks        = "tasks"
	ErrorsBefore = "errorsBefore"
	ErrorsAfter  = "errorsAfter"
	Accuracy     = "accuracy"
	Confidence   = "confidence"
	Errors       = "errors"
)

type voiceRow struct {
	day      string
	calls    float64
	answered float64
	bookings float64
}

type reviewsRow struct {
	month  string
	google float64
	fb     float64
	tp     float64
	avg    float64
}

type automationRow struct {
	week       string
	tasks      float64
	errsBefore float64
	errsAfter  float64
}

type aiRow struct {
	week       string
	accuracy   float64
	confidence float64
	errors     float64
}

var voiceRows = []voiceRow{
	{"Mon", 210, 182, 42},
	{"Tue", 240, 201, 55},
	{"Wed", 198, 171, 39},
	{"Thu", 312, 281, 68},
	{"Fri", 260, 229, 57},
}

var reviewsRows = []reviewsRow{
	{"Jan", 14, 8, 5, 4.3},
	{"Feb", 20, 10, 7, 4.4},
	{"Mar", 31, 15, 10, 4.6},
	{"Apr", 45, 20, 14, 4.7},
	{"May", 70, 33, 21, 4.8},
}

var automationRows = []automationRow{
	{"W1", 120, 18, 6},
	{"W2", 160, 20, 7},
	{"W3", 210, 22, 8},
	{"W4", 250, 25, 9},
}

var aiRows = []aiRow{
	{"W1", 86, 0.78, 4},
	{"W2", 89, 0.81, 3},
	{"W3", 92, 0.84, 2},
	{"W4", 94, 0.86, 1},
}

var sentimentSlices = []model.Slice{
	{Name: "Positive", Value: 72, Color: theme.Accent},
	{Name: "Neutral", Value: 18, Color: theme.Neutral},
	{Name: "Negative", Value: 10, Color: theme.Red},
}

// Voice returns daily call handling figures.
func Voice() model.Dataset {
	samples := make([]model.Sample, 0, len(voiceRows))
	for _, r := range voiceRows {
		samples = append(samples, model.Sample{
			Period: r.day,
			Values: map[string]float64{Calls: r.calls, Answered: r.answered, Bookings: r.bookings},
		})
	}
	return model.Dataset{Name: "voice", PeriodKey: "day", Samples: samples}
}

// Reviews returns monthly review counts per platform and the average rating.
func Reviews() model.Dataset {
	samples := make([]model.Sample, 0, len(reviewsRows))
	for _, r := range reviewsRows {
		samples = append(samples, model.Sample{
			Period: r.month,
			Values: map[string]float64{Google: r.google, Facebook: r.fb, Trustpilot: r.tp, AvgRating: r.avg},
		})
	}
	return model.Dataset{Name: "reviews", PeriodKey: "m", Samples: samples}
}

// Automation returns weekly task throughput and error counts.
func Automation() model.Dataset {
	samples := make([]model.Sample, 0, len(automationRows))
	for _, r := range automationRows {
		samples = append(samples, model.Sample{
			Period: r.week,
			Values: map[string]float64{Tasks: r.tasks, ErrorsBefore: r.errsBefore, ErrorsAfter: r.errsAfter},
		})
	}
	return model.Dataset{Name: "automation", PeriodKey: "w", Samples: samples}
}

// AI returns weekly model accuracy, confidence and error counts.
func AI() model.Dataset {
	samples := make([]model.Sample, 0, len(aiRows))
	for _, r := range aiRows {
		samples = append(samples, model.Sample{
			Period: r.week,
			Values: map[string]float64{Accuracy: r.accuracy, Confidence: r.confidence, Errors: r.errors},
		})
	}
	return model.Dataset{Name: "ai", PeriodKey: "w", Samples: samples}
}

// Sentiment returns the review sentiment breakdown.
func Sentiment() []model.Slice {
	return append([]model.Slice(nil), sentimentSlices...)
}
