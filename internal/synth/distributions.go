package synth

import (
	"time"

	"github.com/brewos-io/app/internal/models"
)

// todayWeeklyShots is the exact value shown for the current weekday, so the
// weekly chart and the "today" headline agree on first paint.
const todayWeeklyShots = 4

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
	time.Sunday:    "Sun",
}

// typical shots per hour of day, peaking over the morning rush. Jittered per
// call, floored at zero.
var hourlyBase = [24]int{
	0, 0, 0, 0, 0, 0, // 00-05
	1, 3, 4, 3, // 06-09
	2, 1, 1, 1, // 10-13
	2, 2, 1, // 14-16
	2, 2, 1, // 17-19
	1, 0, 0, 0, // 20-23
}

// WeeklyUsage synthesizes one shot-count per weekday, Monday first. Today's
// value is exact; other days get a day-type base with small jitter, floored
// at 1.
func (e *Engine) WeeklyUsage() []models.WeeklyUsage {
	today := e.now().Weekday()

	week := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}

	out := make([]models.WeeklyUsage, 0, len(week))
	for _, wd := range week {
		shots := todayWeeklyShots
		if wd != today {
			base := 3
			if wd == time.Saturday || wd == time.Sunday {
				base = 5
			}
			shots = base + e.intn(5) - 2 // ±2 jitter
			if shots < 1 {
				shots = 1
			}
		}
		out = append(out, models.WeeklyUsage{Day: weekdayLabels[wd], Shots: shots})
	}
	return out
}

// HourlyDistribution synthesizes the per-hour shot distribution.
func (e *Engine) HourlyDistribution() []models.HourlyUsage {
	out := make([]models.HourlyUsage, 0, 24)
	for hour, base := range hourlyBase {
		count := base + e.intn(3) - 1 // ±1 jitter
		if count < 0 {
			count = 0
		}
		out = append(out, models.HourlyUsage{Hour: hour, Count: count})
	}
	return out
}
