package synth

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func testEngine(seed int64, now time.Time) *Engine {
	return NewEngineWith(rand.NewSource(seed), func() time.Time { return now })
}

var testNow = time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC) // a Wednesday

func TestBrewHistory_NeverEmpty(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		e := testEngine(seed, testNow)
		if len(e.BrewHistory()) == 0 {
			t.Fatalf("seed %d: empty brew history", seed)
		}
	}
}

func TestBrewHistory_WindowAndOrdering(t *testing.T) {
	e := testEngine(7, testNow)
	records := e.BrewHistory()

	earliest := testNow.AddDate(0, 0, -21).Unix()
	for i, r := range records {
		if r.Timestamp < earliest || r.Timestamp > testNow.Unix() {
			t.Errorf("record %d outside trailing 21-day window: %d", i, r.Timestamp)
		}
		if i > 0 && records[i-1].Timestamp < r.Timestamp {
			t.Errorf("records not sorted descending at index %d", i)
		}
	}
}

func TestBrewHistory_YieldDerivedFromDoseAndRatio(t *testing.T) {
	e := testEngine(3, testNow)
	for i, r := range e.BrewHistory() {
		want := math.Round(r.DoseWeight*r.Ratio*10) / 10
		if r.YieldWeight != want {
			t.Errorf("record %d: yield %.1f, want %.1f (dose %.1f ratio %.1f)",
				i, r.YieldWeight, want, r.DoseWeight, r.Ratio)
		}
	}
}

func TestBrewHistory_ValueBands(t *testing.T) {
	e := testEngine(11, testNow)
	for i, r := range e.BrewHistory() {
		if r.DoseWeight < 17.0 || r.DoseWeight > 21.0 {
			t.Errorf("record %d: dose %.1f out of band", i, r.DoseWeight)
		}
		if r.Ratio < 1.8 || r.Ratio > 2.5 {
			t.Errorf("record %d: ratio %.1f out of band", i, r.Ratio)
		}
		if r.PeakPressure < 8.2 || r.PeakPressure > 10.0 {
			t.Errorf("record %d: pressure %.1f out of band", i, r.PeakPressure)
		}
		if r.AvgTemperature < 92.5 || r.AvgTemperature > 96.0 {
			t.Errorf("record %d: temperature %.1f out of band", i, r.AvgTemperature)
		}
		if r.AvgFlowRate < 1.8 || r.AvgFlowRate > 3.0 {
			t.Errorf("record %d: flow %.1f out of band", i, r.AvgFlowRate)
		}
		if r.DurationMs < 25000 || r.DurationMs > 35000 {
			t.Errorf("record %d: duration %d out of band", i, r.DurationMs)
		}
	}
}

func TestBrewHistory_RatingValues(t *testing.T) {
	seen := map[int]bool{}
	for seed := int64(1); seed <= 10; seed++ {
		e := testEngine(seed, testNow)
		for _, r := range e.BrewHistory() {
			switch r.Rating {
			case 0, 3, 4, 5:
				seen[r.Rating] = true
			default:
				t.Fatalf("unexpected rating %d", r.Rating)
			}
		}
	}
	if !seen[0] {
		t.Error("expected some unrated shots across seeds")
	}
	if !seen[4] && !seen[5] {
		t.Error("expected some 4-5 star shots across seeds")
	}
}
