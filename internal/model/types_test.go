package model

import "testing"

func TestParseSection(t *testing.T) {
	cases := map[string]Section{
		"overview":       SectionOverview,
		"VOICE":          SectionVoice,
		"Voice Agent":    SectionVoice,
		" reviews ":      SectionReviews,
		"automation":     SectionAutomation,
		"ai":             SectionAI,
		"AI Performance": SectionAI,
	}
	for in, want := range cases {
		got, err := ParseSection(in)
		if err != nil {
			t.Fatalf("ParseSection(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSection(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseSection("billing"); err == nil {
		t.Fatalf("expected error for unknown section")
	}
}

func TestSectionsOrder(t *testing.T) {
	got := Sections()
	if len(got) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(got))
	}
	labels := []string{"Overview", "Voice Agent", "Reviews", "Automation", "AI Performance"}
	for i, s := range got {
		if s.Label() != labels[i] {
			t.Fatalf("section %d: expected %q, got %q", i, labels[i], s.Label())
		}
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if Section(9).Valid() {
		t.Fatalf("expected out-of-range section to be invalid")
	}
}
