package synth

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerHistory_Shape(t *testing.T) {
	e := testEngine(5, testNow)
	samples := e.PowerHistory()

	require.Len(t, samples, 288)

	start := testNow.Add(-24 * time.Hour).Unix()
	for i, s := range samples {
		assert.Equal(t, start+int64(i)*300, s.Timestamp,
			"sample %d timestamp must advance in constant 300s steps", i)
	}
}

func TestPowerHistory_MaxAboveAvg(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		e := testEngine(seed, testNow)
		for i, s := range e.PowerHistory() {
			if s.MaxWatts < s.AvgWatts {
				t.Fatalf("seed %d sample %d: max %.1f < avg %.1f",
					seed, i, s.MaxWatts, s.AvgWatts)
			}
		}
	}
}

func TestPowerHistory_KwhDerivation(t *testing.T) {
	e := testEngine(9, testNow)
	for i, s := range e.PowerHistory() {
		want := math.Round(s.AvgWatts*300/3600000*10000) / 10000
		assert.InDelta(t, want, s.KwhConsumed, 1e-9, "sample %d", i)
	}
}

func TestPowerHistory_NightStandby(t *testing.T) {
	e := testEngine(13, testNow)
	for _, s := range e.PowerHistory() {
		ts := time.Unix(s.Timestamp, 0).UTC()
		h := ts.Hour()
		if h >= 22 || h < 5 {
			assert.LessOrEqual(t, s.AvgWatts, 3.0,
				"night sample at %02d:00 should be near-zero standby", h)
		}
	}
}

func TestPowerHistory_SessionsDrawRealPower(t *testing.T) {
	e := testEngine(17, testNow)
	var sessionMax float64
	for _, s := range e.PowerHistory() {
		ts := time.Unix(s.Timestamp, 0).UTC()
		hour := float64(ts.Hour()) + float64(ts.Minute())/60.0
		if sess, _ := sessionAt(hour); sess != nil && s.AvgWatts > sessionMax {
			sessionMax = s.AvgWatts
		}
	}
	// warm-up alone guarantees four-digit draws inside sessions
	assert.Greater(t, sessionMax, 900.0)
}

func TestCurrentPowerSample_BucketAligned(t *testing.T) {
	e := testEngine(21, testNow)
	s := e.CurrentPowerSample()

	assert.Equal(t, testNow.Truncate(5*time.Minute).Unix(), s.Timestamp)
	assert.GreaterOrEqual(t, s.MaxWatts, s.AvgWatts)
}
