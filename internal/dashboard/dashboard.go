// Package dashboard maps each section to its fixed set of KPI tiles and chart cards.
package dashboard

import (
	"github.com/truephase/tpdash/internal/dataset"
	"github.com/truephase/tpdash/internal/model"
	"github.com/truephase/tpdash/internal/theme"
)

// Brand copy and the call-to-action target.
const (
	BookingURL = "https://truephase.co.uk/#contact"
	Product    = "Truephase Ai Dashboard"
	Wordmark   = "◆ TRUEPHASE"
	Tagline    = "AI Automation Suite"
	Subtitle   = "Live demo with sample data • Dark UI • Interactive charts"
	CTALabel   = "Book a Demo"
)

// Layout returns the content of a section.
func Layout(section model.Section) model.Layout {
	var l model.Layout
	switch section {
	case model.SectionOverview:
		l = overview()
	case model.SectionVoice:
		l = voice()
	case model.SectionReviews:
		l = reviews()
	case model.SectionAutomation:
		l = automation()
	case model.SectionAI:
		l = ai()
	default:
		l = overview()
		section = model.SectionOverview
	}
	l.Section = section
	l.Heading = section.Heading()
	return l
}

func overview() model.Layout {
	return model.Layout{
		KPIs: []model.KPI{
			{Label: "Calls Answered by AI", Value: "1,064", Sub: "+18% vs last week"},
			{Label: "Hours Saved", Value: "142 hrs", Sub: "Admin & scheduling"},
			{Label: "Avg Rating", Value: "4.7★", Sub: "Google/Facebook/Trustpilot"},
			{Label: "Model Accuracy", Value: "94%", Sub: "Past 7 days"},
		},
		Cards: []model.Card{
			{
				Title: "Voice Volume & Bookings",
				Chart: model.Chart{
					Kind: model.ChartArea,
					Data: dataset.Voice(),
					Marks: []model.Mark{
						{Key: dataset.Calls, Kind: model.MarkArea, Color: theme.Accent},
						{Key: dataset.Bookings, Kind: model.MarkLine, Color: theme.Accent2},
					},
				},
			},
			reviewsByPlatform(),
			{
				Title: "Automation: Tasks & Error Reduction",
				Chart: model.Chart{
					Kind: model.ChartBar,
					Data: dataset.Automation(),
					Marks: []model.Mark{
						{Key: dataset.Tasks, Kind: model.MarkBar, Color: theme.Accent},
						{Key: dataset.ErrorsAfter, Kind: model.MarkBar, Color: theme.Red},
					},
				},
			},
		},
	}
}

func voice() model.Layout {
	return model.Layout{
		KPIs: []model.KPI{
			{Label: "Response Rate", Value: "86%", Sub: "Answered ÷ Total"},
			{Label: "Avg Response Time", Value: "8.2s", Sub: "to pick up"},
			{Label: "Missed Calls Prevented", Value: "260", Sub: "this week"},
			{Label: "Conversions / Bookings", Value: "56", Sub: "from AI-led calls"},
		},
		Cards: []model.Card{
			{
				Title: "Total Calls Handled",
				Chart: model.Chart{
					Kind:  model.ChartLine,
					Data:  dataset.Voice(),
					Marks: []model.Mark{{Key: dataset.Calls, Kind: model.MarkLine, Color: theme.Accent}},
				},
			},
			{
				Title: "Missed Calls Prevented (Before vs After)",
				Chart: model.Chart{
					Kind:  model.ChartBar,
					Data:  dataset.Voice(),
					Marks: []model.Mark{{Key: dataset.Answered, Kind: model.MarkBar, Color: theme.Accent}},
				},
			},
			{
				Title: "Bookings Made",
				Chart: model.Chart{
					Kind:  model.ChartBar,
					Data:  dataset.Voice(),
					Marks: []model.Mark{{Key: dataset.Bookings, Kind: model.MarkBar, Color: theme.Accent2}},
				},
			},
		},
	}
}

func reviews() model.Layout {
	return model.Layout{
		KPIs: []model.KPI{
			{Label: "Response Rate to Reviews", Value: "86%", Sub: "AI replies"},
			{Label: "Reviews this Month", Value: "124", Sub: "+41% vs last month"},
			{Label: "Avg Rating Trend", Value: "4.8★", Sub: "up from 4.3★"},
			{Label: "Top Keyword", Value: "quick booking", Sub: "AI NLP extraction"},
		},
		Cards: []model.Card{
			reviewsByPlatform(),
			{
				Title: "Average Rating Trend",
				Chart: model.Chart{
					Kind:   model.ChartArea,
					Data:   dataset.Reviews(),
					Marks:  []model.Mark{{Key: dataset.AvgRating, Kind: model.MarkArea, Color: theme.Accent2}},
					Domain: &model.Domain{Min: 4, Max: 5},
				},
			},
			{
				Title: "Sentiment Breakdown",
				Chart: model.Chart{
					Kind:   model.ChartShare,
					Slices: dataset.Sentiment(),
				},
			},
		},
	}
}

func automation() model.Layout {
	return model.Layout{
		KPIs: []model.KPI{
			{Label: "Tasks Automated", Value: "740", Sub: "this month"},
			{Label: "Hours Saved", Value: "140 hrs", Sub: "£8.8k cost saved est."},
			{Label: "Error Reduction", Value: "−62%", Sub: "before vs after"},
			{Label: "Success Rate", Value: "95%", Sub: "execution success"},
		},
		Cards: []model.Card{
			{
				Title: "Tasks Automated",
				Chart: model.Chart{
					Kind:  model.ChartArea,
					Data:  dataset.Automation(),
					Marks: []model.Mark{{Key: dataset.Tasks, Kind: model.MarkArea, Color: theme.Accent}},
				},
			},
			{
				Title: "Error Reduction (%) — Before vs After",
				Chart: model.Chart{
					Kind: model.ChartBar,
					Data: dataset.Automation(),
					Marks: []model.Mark{
						{Key: dataset.ErrorsBefore, Kind: model.MarkBar, Color: theme.Red},
						{Key: dataset.ErrorsAfter, Kind: model.MarkBar, Color: theme.Accent},
					},
				},
			},
			{
				Title: "Automation ROI Calculator (demo)",
				Right: "Assumes £25/hr",
				Chart: model.Chart{
					Kind: model.ChartStat,
					Stat: model.Stat{Value: "£833", Unit: "/month", Color: theme.Text},
				},
			},
		},
	}
}

func ai() model.Layout {
	return model.Layout{
		KPIs: []model.KPI{
			{Label: "Model Accuracy", Value: "94%", Sub: "weekly"},
			{Label: "Avg Confidence", Value: "0.86", Sub: "0–1"},
			{Label: "Retrains", Value: "4", Sub: "past month"},
			{Label: "Incidents", Value: "1", Sub: "downtime/error logs"},
		},
		Cards: []model.Card{
			{
				Title: "Model Accuracy Trend",
				Chart: model.Chart{
					Kind:  model.ChartLine,
					Data:  dataset.AI(),
					Marks: []model.Mark{{Key: dataset.Accuracy, Kind: model.MarkLine, Color: theme.Accent}},
				},
			},
			{
				Title: "Prediction Confidence",
				Chart: model.Chart{
					Kind:   model.ChartArea,
					Data:   dataset.AI(),
					Marks:  []model.Mark{{Key: dataset.Confidence, Kind: model.MarkArea, Color: theme.Accent2}},
					Domain: &model.Domain{Min: 0, Max: 1},
				},
			},
			{
				Title: "AI Downtime / Errors",
				Chart: model.Chart{
					Kind: model.ChartStat,
					Stat: model.Stat{Value: "↓ 92%", Note: "vs. baseline month", Color: theme.Accent},
				},
			},
		},
	}
}

func reviewsByPlatform() model.Card {
	return model.Card{
		Title: "Reviews Collected by Platform",
		Chart: model.Chart{
			Kind: model.ChartLine,
			Data: dataset.Reviews(),
			Marks: []model.Mark{
				{Key: dataset.Google, Kind: model.MarkLine, Color: theme.Accent},
				{Key: dataset.Facebook, Kind: model.MarkLine, Color: theme.Sky},
				{Key: dataset.Trustpilot, Kind: model.MarkLine, Color: theme.Amber},
			},
		},
	}
}
