package synth

import (
	"time"

	"github.com/brewos-io/app/internal/models"
)

// Statistics synthesizes the multi-period snapshot: fixed plausible constants
// for a machine that has been in service a couple of years. The snapshot is
// intentionally independent of BrewHistory/DailyHistory — the collections are
// separate synthetic views and may disagree in detail.
func (e *Engine) Statistics() models.Statistics {
	now := e.now()

	return models.Statistics{
		Lifetime: models.PeriodStats{
			ShotCount:       2847,
			TotalBrewTimeMs: 2847 * 29100,
			AvgBrewTimeMs:   29100,
			MinBrewTimeMs:   18400,
			MaxBrewTimeMs:   42700,
			TotalKwh:        412.6,
		},
		Daily: models.PeriodStats{
			ShotCount:       6,
			TotalBrewTimeMs: 6 * 28500,
			AvgBrewTimeMs:   28500,
			MinBrewTimeMs:   25200,
			MaxBrewTimeMs:   31800,
			TotalKwh:        1.24,
		},
		Weekly: models.PeriodStats{
			ShotCount:       38,
			TotalBrewTimeMs: 38 * 28900,
			AvgBrewTimeMs:   28900,
			MinBrewTimeMs:   22100,
			MaxBrewTimeMs:   36500,
			TotalKwh:        8.72,
		},
		Monthly: models.PeriodStats{
			ShotCount:       164,
			TotalBrewTimeMs: 164 * 29000,
			AvgBrewTimeMs:   29000,
			MinBrewTimeMs:   20300,
			MaxBrewTimeMs:   39900,
			TotalKwh:        37.9,
		},
		Maintenance: models.MaintenanceStats{
			ShotsSinceBackflush:  23,
			LastBackflush:        now.AddDate(0, 0, -3).Unix(),
			ShotsSinceGroupClean: 112,
			LastGroupClean:       now.AddDate(0, 0, -12).Unix(),
			ShotsSinceDescale:    487,
			LastDescale:          now.AddDate(0, 0, -64).Unix(),
		},
		Session: models.SessionStats{
			ShotsThisSession: 3,
			SessionStart:     now.Add(-2 * time.Hour).Unix(),
		},
	}
}
