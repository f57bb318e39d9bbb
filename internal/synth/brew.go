package synth

import (
	"sort"
	"time"

	"github.com/brewos-io/app/internal/models"
)

const brewHistoryDays = 21

// chance that a past day saw no coffee at all
const skipDayChance = 0.05

// time-of-day mixture for shot placement, checked in order against one
// uniform draw. Remaining probability mass falls through to a uniform pick
// from typicalHours.
var brewTimeMixture = []struct {
	threshold float64
	startMin  int // minutes after midnight
	endMin    int
}{
	{0.40, 6*60 + 30, 9 * 60}, // morning rush
	{0.60, 14 * 60, 16 * 60},  // early afternoon
	{0.85, 17 * 60, 19 * 60},  // evening
}

var typicalHours = []int{7, 8, 9, 10, 12, 14, 15, 16, 17, 18, 19}

// shotsForDay draws a day-shot-count by day type; today is biased upward and
// is never empty.
func (e *Engine) shotsForDay(dt dayType, today bool) int {
	if today {
		return 3 + e.intn(5) // 3-7
	}
	switch dt {
	case dayWeekend:
		return 2 + e.intn(7) // 2-8, widest
	case dayFriday:
		return 2 + e.intn(5) // 2-6
	default:
		return 1 + e.intn(5) // 1-5
	}
}

// BrewHistory synthesizes extraction events for the trailing 21 days
// (including today), sorted most recent first. Never empty: today always
// contributes at least one shot.
func (e *Engine) BrewHistory() []models.BrewRecord {
	now := e.now()
	records := make([]models.BrewRecord, 0, brewHistoryDays*4)

	for offset := brewHistoryDays - 1; offset >= 0; offset-- {
		day := midnight(now.AddDate(0, 0, -offset))
		today := offset == 0

		if !today && e.rand01() < skipDayChance {
			continue
		}

		count := e.shotsForDay(classifyDay(day), today)
		for i := 0; i < count; i++ {
			ts := e.shotTime(day, now, today)
			records = append(records, e.brewRecord(ts))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	return records
}

// shotTime places one shot within the day via the weighted mixture, with up
// to ±1 hour of jitter. Today's shots are clamped so nothing lands in the
// future.
func (e *Engine) shotTime(day, now time.Time, today bool) time.Time {
	var minute int
	r := e.rand01()
	placed := false
	for _, w := range brewTimeMixture {
		if r < w.threshold {
			minute = w.startMin + e.intn(w.endMin-w.startMin)
			placed = true
			break
		}
	}
	if !placed {
		hour := typicalHours[e.intn(len(typicalHours))]
		minute = hour*60 + e.intn(60)
	}

	minute += e.intn(121) - 60 // ±1h jitter
	if minute < 0 {
		minute = 0
	}
	if minute > 24*60-1 {
		minute = 24*60 - 1
	}

	ts := day.Add(time.Duration(minute) * time.Minute)
	if today && ts.After(now) {
		ts = now.Add(-time.Duration(1+e.intn(30)) * time.Minute)
	}
	return ts
}

func (e *Engine) brewRecord(ts time.Time) models.BrewRecord {
	dose := round1(e.between(17.0, 21.0))
	ratio := round1(e.between(1.8, 2.5))

	return models.BrewRecord{
		Timestamp:      ts.Unix(),
		DurationMs:     25000 + e.int63n(10001), // 25-35 s
		DoseWeight:     dose,
		YieldWeight:    round1(dose * ratio),
		Ratio:          ratio,
		PeakPressure:   round1(e.between(8.2, 10.0)),
		AvgTemperature: round1(e.between(92.5, 96.0)),
		AvgFlowRate:    round1(e.between(1.8, 3.0)),
		Rating:         e.rating(),
	}
}

// rating: most shots go unrated; rated ones skew to 4-5 stars.
func (e *Engine) rating() int {
	if e.rand01() >= 0.25 {
		return 0
	}
	if e.rand01() < 0.80 {
		return 4 + e.intn(2)
	}
	return 3
}
