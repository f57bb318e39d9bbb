package synth

import (
	"time"

	"github.com/brewos-io/app/internal/models"
)

const dailyHistoryDays = 30

// chance a past day was a zero-shot day (machine stayed off)
const zeroDayChance = 0.10

// energy model terms (kWh)
const (
	energyBase         = 0.35 // warm-up + standby
	energyPerShot      = 0.09
	energySessionBonus = 0.15 // busy days keep the boiler hot longer
)

// on-time model terms (minutes)
const (
	warmupMinutes    = 25
	interShotIdleMin = 8
)

// steam-cycle probability by day type (weekend-biased: milk drinks at home)
var steamChance = map[dayType]float64{
	dayWeekend: 0.6,
	dayFriday:  0.4,
	dayRegular: 0.3,
}

// DailyHistory synthesizes summaries for the trailing 30 days, oldest first.
func (e *Engine) DailyHistory() []models.DailySummary {
	now := e.now()
	summaries := make([]models.DailySummary, 0, dailyHistoryDays)

	for offset := dailyHistoryDays - 1; offset >= 0; offset-- {
		day := midnight(now.AddDate(0, 0, -offset))
		summaries = append(summaries, e.dailySummary(day, offset == 0))
	}
	return summaries
}

func (e *Engine) dailySummary(day time.Time, today bool) models.DailySummary {
	dt := classifyDay(day)

	// zero-shot days happen, but never today
	if !today && e.rand01() < zeroDayChance {
		return models.DailySummary{
			Date:     day.Unix(),
			TotalKwh: round2(e.between(0.10, 0.25)), // standby only
		}
	}

	var shots int
	switch dt {
	case dayWeekend:
		shots = 3 + e.intn(6) // 3-8
	case dayFriday:
		shots = 2 + e.intn(5) // 2-6
	default:
		shots = 1 + e.intn(5) // 1-5
	}

	avgBrew := 27000 + e.int63n(6001) // 27-33 s
	totalBrew := int64(shots) * avgBrew

	kwh := energyBase + energyPerShot*float64(shots) + e.between(0, 0.1)
	if shots > 4 {
		kwh += energySessionBonus
	}

	onTime := warmupMinutes +
		int(totalBrew/60000) +
		(shots-1)*interShotIdleMin +
		e.intn(16)

	steam := 0
	if e.rand01() < steamChance[dt] {
		steam = 1 + e.intn(3)
	}

	return models.DailySummary{
		Date:            day.Unix(),
		ShotCount:       shots,
		TotalBrewTimeMs: totalBrew,
		AvgBrewTimeMs:   avgBrew,
		TotalKwh:        round2(kwh),
		OnTimeMinutes:   onTime,
		SteamCycles:     steam,
	}
}
