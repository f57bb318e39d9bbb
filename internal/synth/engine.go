// Package synth generates the synthetic telemetry the BrewOS app renders in
// demo mode: brew history, power history, daily summaries, usage
// distributions and a statistics snapshot. Generators take no external input
// besides the clock and the engine's random source; they never fail and every
// call returns a fully materialized result.
package synth

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/brewos-io/app/internal/models"
)

// Engine is the telemetry synthesizer. Interval sizes, sample counts and
// probability tables live in the per-generator files so the weighted branches
// stay auditable.
//
// Methods are safe for concurrent use: the random source is guarded, and
// everything else is read-only after construction.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time

	// fixed per-engine demo log feed, not regenerated per call
	logFeed []models.LogEntry
}

// NewEngine creates a time-seeded engine for production use.
func NewEngine() *Engine {
	return NewEngineWith(rand.NewSource(time.Now().UnixNano()), time.Now)
}

// NewEngineWith creates an engine with an injectable random source and clock.
// Tests use fixed seeds and a frozen clock.
func NewEngineWith(src rand.Source, now func() time.Time) *Engine {
	e := &Engine{
		rng: rand.New(src),
		now: now,
	}
	e.logFeed = buildLogFeed(now())
	return e
}

// Dataset produces the full bundle UI views need for one render.
func (e *Engine) Dataset() models.DemoDataset {
	return models.DemoDataset{
		Stats:              e.Statistics(),
		Weekly:             e.WeeklyUsage(),
		HourlyDistribution: e.HourlyDistribution(),
		BrewHistory:        e.BrewHistory(),
		PowerHistory:       e.PowerHistory(),
		DailyHistory:       e.DailyHistory(),
	}
}

// LogFeed returns the fixed illustrative log sequence for the log viewer's
// first paint.
func (e *Engine) LogFeed() []models.LogEntry {
	out := make([]models.LogEntry, len(e.logFeed))
	copy(out, e.logFeed)
	return out
}

// --- shared draw helpers ---

func (e *Engine) rand01() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func (e *Engine) int63n(n int64) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Int63n(n)
}

// between draws uniformly from [lo, hi).
func (e *Engine) between(lo, hi float64) float64 {
	return lo + e.rand01()*(hi-lo)
}

type dayType int

const (
	dayRegular dayType = iota
	dayFriday
	dayWeekend
)

func classifyDay(t time.Time) dayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return dayWeekend
	case time.Friday:
		return dayFriday
	default:
		return dayRegular
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
