package synth

import (
	"math"
	"time"

	"github.com/brewos-io/app/internal/models"
)

const (
	powerSampleCount    = 288
	powerSampleInterval = 5 * time.Minute
	powerIntervalSec    = 300.0
)

// usageSession is one daily block of machine activity.
type usageSession struct {
	startHour float64 // hour of day, fractional
	duration  float64 // hours
	intensity float64 // 0-1, drives the active/idle/cooling split
}

var defaultSessions = []usageSession{
	{startHour: 6.5, duration: 2.5, intensity: 0.8},  // morning
	{startHour: 14.0, duration: 2.0, intensity: 0.5}, // afternoon
	{startHour: 18.0, duration: 2.0, intensity: 0.6}, // evening
}

// warm-up window at the start of each session
const warmupHours = 20.0 / 60.0

type wattBand struct{ lo, hi float64 }

// in-session branches past warm-up. One uniform draw is compared against
// intensity*scale thresholds in order; the max band sits strictly above the
// avg band in every branch.
var sessionBands = []struct {
	scale float64 // threshold = session intensity * scale
	avg   wattBand
	max   wattBand
}{
	{0.6, wattBand{1200, 1700}, wattBand{1700, 1950}},     // active brewing
	{1.0, wattBand{250, 450}, wattBand{450, 620}},         // idle but hot
	{math.Inf(1), wattBand{100, 200}, wattBand{200, 320}}, // cooling
}

// off-session branches
var (
	nightBand      = struct{ avg, max wattBand }{wattBand{1, 3}, wattBand{3, 6}}
	spikeBand      = struct{ avg, max wattBand }{wattBand{150, 300}, wattBand{300, 420}}
	standbyMaxBand = wattBand{2, 5}

	standbyWatts = 2.0 // fixed daytime standby baseline
	spikeChance  = 0.08
)

func (e *Engine) draw(b wattBand) float64 {
	return round1(e.between(b.lo, b.hi))
}

// PowerHistory synthesizes exactly 288 five-minute samples covering the
// trailing 24 hours, oldest first.
func (e *Engine) PowerHistory() []models.PowerSample {
	now := e.now()
	start := now.Add(-24 * time.Hour)

	samples := make([]models.PowerSample, 0, powerSampleCount)
	for i := 0; i < powerSampleCount; i++ {
		ts := start.Add(time.Duration(i) * powerSampleInterval)
		samples = append(samples, e.powerSampleAt(ts))
	}
	return samples
}

// CurrentPowerSample synthesizes the reading for the present 5-minute bucket.
// Used by the MQTT demo feed.
func (e *Engine) CurrentPowerSample() models.PowerSample {
	return e.powerSampleAt(e.now().Truncate(powerSampleInterval))
}

func (e *Engine) powerSampleAt(ts time.Time) models.PowerSample {
	hour := float64(ts.Hour()) + float64(ts.Minute())/60.0

	var avg, max float64
	switch sess, elapsed := sessionAt(hour); {
	case sess != nil && elapsed < warmupHours:
		// warm-up taper: heater starts near full draw and settles
		progress := elapsed / warmupHours
		avg = round1(1400 - 400*progress + e.between(-50, 50))
		max = round1(avg + e.between(150, 400))
	case sess != nil:
		r := e.rand01()
		for _, b := range sessionBands {
			if r < sess.intensity*b.scale {
				avg = e.draw(b.avg)
				max = e.draw(b.max)
				break
			}
		}
	case hour >= 22 || hour < 5:
		avg = e.draw(nightBand.avg)
		max = e.draw(nightBand.max)
	case e.rand01() < spikeChance:
		// brief off-schedule activity
		avg = e.draw(spikeBand.avg)
		max = e.draw(spikeBand.max)
	default:
		avg = standbyWatts
		max = e.draw(standbyMaxBand)
	}

	return models.PowerSample{
		Timestamp:   ts.Unix(),
		AvgWatts:    avg,
		MaxWatts:    max,
		KwhConsumed: round4(avg * powerIntervalSec / 3600000),
	}
}

// sessionAt returns the usage session covering the given hour-of-day and the
// hours elapsed since its start, or nil when the machine is off schedule.
func sessionAt(hour float64) (*usageSession, float64) {
	for i := range defaultSessions {
		s := &defaultSessions[i]
		if hour >= s.startHour && hour < s.startHour+s.duration {
			return s, hour - s.startHour
		}
	}
	return nil, 0
}
