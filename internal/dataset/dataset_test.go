package dataset

import (
	"reflect"
	"testing"
)

func TestSeriesPeriods(t *testing.T) {
	if got := Voice().Labels(); !reflect.DeepEqual(got, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}) {
		t.Fatalf("unexpected voice periods %q", got)
	}
	if got := Reviews().Labels(); !reflect.DeepEqual(got, []string{"Jan", "Feb", "Mar", "Apr", "May"}) {
		t.Fatalf("unexpected review periods %q", got)
	}
	if got := Automation().Labels(); !reflect.DeepEqual(got, []string{"W1", "W2", "W3", "W4"}) {
		t.Fatalf("unexpected automation periods %q", got)
	}
	if got := AI().Labels(); !reflect.DeepEqual(got, []string{"W1", "W2", "W3", "W4"}) {
		t.Fatalf("unexpected ai periods %q", got)
	}
}

func TestColumnsAreVerbatim(t *testing.T) {
	calls, ok := Voice().Column(Calls)
	if !ok || !reflect.DeepEqual(calls, []float64{210, 240, 198, 312, 260}) {
		t.Fatalf("unexpected calls %v", calls)
	}
	avg, ok := Reviews().Column(AvgRating)
	if !ok || !reflect.DeepEqual(avg, []float64{4.3, 4.4, 4.6, 4.7, 4.8}) {
		t.Fatalf("unexpected ratings %v", avg)
	}
	conf, ok := AI().Column(Confidence)
	if !ok || !reflect.DeepEqual(conf, []float64{0.78, 0.81, 0.84, 0.86}) {
		t.Fatalf("unexpected confidence %v", conf)
	}
	if _, ok := AI().Column(Calls); ok {
		t.Fatalf("expected missing column to report !ok")
	}
}

func TestSentimentCopy(t *testing.T) {
	s := Sentiment()
	if len(s) != 3 || s[0].Name != "Positive" || s[0].Value != 72 || s[1].Value != 18 || s[2].Value != 10 {
		t.Fatalf("unexpected sentiment %+v", s)
	}
	s[0].Value = 1
	if Sentiment()[0].Value != 72 {
		t.Fatalf("expected Sentiment to return a copy")
	}
}
