// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Section identifies one of the dashboard views.
type Section int

// Dashboard sections in navigation order.
const (
	SectionOverview Section = iota
	SectionVoice
	SectionReviews
	SectionAutomation
	SectionAI
)

var sectionOrder = []Section{
	SectionOverview,
	SectionVoice,
	SectionReviews,
	SectionAutomation,
	SectionAI,
}

// Sections returns all sections in navigation order.
func Sections() []Section {
	return append([]Section(nil), sectionOrder...)
}

// ID returns the stable identifier used by flags and config.
func (s Section) ID() string {
	switch s {
	case SectionOverview:
		return "overview"
	case SectionVoice:
		return "voice"
	case SectionReviews:
		return "reviews"
	case SectionAutomation:
		return "automation"
	case SectionAI:
		return "ai"
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// Label returns the navigation label.
func (s Section) Label() string {
	switch s {
	case SectionOverview:
		return "Overview"
	case SectionVoice:
		return "Voice Agent"
	case SectionReviews:
		return "Reviews"
	case SectionAutomation:
		return "Automation"
	case SectionAI:
		return "AI Performance"
	}
	return s.ID()
}

// Heading returns the title shown above the section content.
func (s Section) Heading() string {
	switch s {
	case SectionOverview:
		return "Overview"
	case SectionVoice:
		return "Voice Agent Analytics"
	case SectionReviews:
		return "Review Management"
	case SectionAutomation:
		return "Business Automation Workflows"
	case SectionAI:
		return "AI Performance & Continuous Improvement"
	}
	return s.ID()
}

func (s Section) String() string {
	return s.ID()
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	return s >= SectionOverview && s <= SectionAI
}

// ParseSection resolves an identifier or navigation label, ignoring case.
func ParseSection(value string) (Section, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, s := range sectionOrder {
		if v == s.ID() || v == strings.ToLower(s.Label()) {
			return s, nil
		}
	}
	ids := make([]string, len(sectionOrder))
	for i, s := range sectionOrder {
		ids[i] = s.ID()
	}
	return SectionOverview, fmt.Errorf("unknown section %q (available: %s)", value, strings.Join(ids, ", "))
}

// Sample is one record of a time series, keyed by its period label.
type Sample struct {
	Period string
	Values map[string]float64
}

// Dataset is an ordered series of samples sharing one period key.
type Dataset struct {
	Name      string
	PeriodKey string
	Samples   []Sample
}

// Labels returns the period labels in order.
func (d Dataset) Labels() []string {
	out := make([]string, len(d.Samples))
	for i, s := range d.Samples {
		out[i] = s.Period
	}
	return out
}

// Column returns the values of one field. ok is false when any sample lacks it.
func (d Dataset) Column(key string) ([]float64, bool) {
	out := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		v, ok := s.Values[key]
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Slice is one category of a share breakdown.
type Slice struct {
	Name  string
	Value float64
	Color string
}

// KPI is a headline tile: label, literal value and an optional note.
type KPI struct {
	Label string
	Value string
	Sub   string
}

// ChartKind selects how a card's chart is drawn.
type ChartKind int

// Chart kinds.
const (
	ChartLine ChartKind = iota
	ChartArea
	ChartBar
	ChartShare
	ChartStat
)

func (k ChartKind) String() string {
	switch k {
	case ChartLine:
		return "line"
	case ChartArea:
		return "area"
	case ChartBar:
		return "bar"
	case ChartShare:
		return "share"
	case ChartStat:
		return "stat"
	}
	return fmt.Sprintf("chart(%d)", int(k))
}

// MarkKind is how a single field is drawn on a cartesian chart.
type MarkKind int

// Mark kinds.
const (
	MarkLine MarkKind = iota
	MarkArea
	MarkBar
)

// Mark binds one dataset field to a color.
type Mark struct {
	Key   string
	Kind  MarkKind
	Color string
}

// Domain fixes the y axis range.
type Domain struct {
	Min float64
	Max float64
}

// Stat is a large single value card body.
type Stat struct {
	Value string
	Unit  string
	Note  string
	Color string
}

// Chart describes one chart bound to constant data.
type Chart struct {
	Kind   ChartKind
	Data   Dataset
	Marks  []Mark
	Domain *Domain
	Slices []Slice
	Stat   Stat
}

// Card is a titled container holding one chart.
type Card struct {
	Title string
	Right string
	Chart Chart
}

// Layout is everything a section shows.
type Layout struct {
	Section Section
	Heading string
	KPIs    []KPI
	Cards   []Card
}

// ColorMode controls ANSI color output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config defines dashboard runtime settings.
type Config struct {
	Section    Section
	Color      ColorMode
	PlotHeight int
	Mouse      bool
}
