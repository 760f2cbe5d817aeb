package chart

import "testing"

func TestAlignColumns(t *testing.T) {
	rows := [][]string{
		{"Positive", "72"},
		{"Neutral", "8"},
	}
	lines := alignColumns([]string{"Name", "Share"}, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Name      Share" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Positive     72" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Neutral       8" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
