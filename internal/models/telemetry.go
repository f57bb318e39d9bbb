package models

// 字段命名与 BrewOS 前端 `types/telemetry.d.ts` 保持一致（camelCase）

// BrewRecord 一次萃取记录
// Rating: 0 = unrated, otherwise 1-5.
type BrewRecord struct {
	Timestamp      int64   `json:"timestamp"` // seconds since epoch
	DurationMs     int64   `json:"durationMs"`
	DoseWeight     float64 `json:"doseWeight"`  // g
	YieldWeight    float64 `json:"yieldWeight"` // g
	Ratio          float64 `json:"ratio"`       // yield / dose
	PeakPressure   float64 `json:"peakPressure"`   // bar
	AvgTemperature float64 `json:"avgTemperature"` // °C
	AvgFlowRate    float64 `json:"avgFlowRate"`    // g/s
	Rating         int     `json:"rating"`
}

// PowerSample 一个 5 分钟功率采样点
type PowerSample struct {
	Timestamp   int64   `json:"timestamp"`
	AvgWatts    float64 `json:"avgWatts"`
	MaxWatts    float64 `json:"maxWatts"`
	KwhConsumed float64 `json:"kwhConsumed"`
}

// DailySummary 单日用量汇总
// Date is the day's midnight in epoch seconds.
type DailySummary struct {
	Date            int64   `json:"date"`
	ShotCount       int     `json:"shotCount"`
	TotalBrewTimeMs int64   `json:"totalBrewTimeMs"`
	AvgBrewTimeMs   int64   `json:"avgBrewTimeMs"`
	TotalKwh        float64 `json:"totalKwh"`
	OnTimeMinutes   int     `json:"onTimeMinutes"`
	SteamCycles     int     `json:"steamCycles"`
}

// WeeklyUsage 每周分布中的一天
type WeeklyUsage struct {
	Day   string `json:"day"` // "Mon" .. "Sun"
	Shots int    `json:"shots"`
}

// HourlyUsage 小时分布中的一个小时
type HourlyUsage struct {
	Hour  int `json:"hour"` // 0-23
	Count int `json:"count"`
}

// PeriodStats one roll-up window inside Statistics.
type PeriodStats struct {
	ShotCount       int     `json:"shotCount"`
	TotalBrewTimeMs int64   `json:"totalBrewTimeMs"`
	AvgBrewTimeMs   int64   `json:"avgBrewTimeMs"`
	MinBrewTimeMs   int64   `json:"minBrewTimeMs"`
	MaxBrewTimeMs   int64   `json:"maxBrewTimeMs"`
	TotalKwh        float64 `json:"totalKwh"`
}

// MaintenanceStats counters since the last maintenance actions.
type MaintenanceStats struct {
	ShotsSinceBackflush  int   `json:"shotsSinceBackflush"`
	LastBackflush        int64 `json:"lastBackflush"`
	ShotsSinceGroupClean int   `json:"shotsSinceGroupClean"`
	LastGroupClean       int64 `json:"lastGroupClean"`
	ShotsSinceDescale    int   `json:"shotsSinceDescale"`
	LastDescale          int64 `json:"lastDescale"`
}

// SessionStats counters for the current power-on session.
type SessionStats struct {
	ShotsThisSession int   `json:"shotsThisSession"`
	SessionStart     int64 `json:"sessionStart"`
}

// Statistics 统计快照（lifetime/daily/weekly/monthly + 维护计数）
// The snapshot is generated independently of the brew/daily collections and
// may disagree with them in detail.
type Statistics struct {
	Lifetime    PeriodStats      `json:"lifetime"`
	Daily       PeriodStats      `json:"daily"`
	Weekly      PeriodStats      `json:"weekly"`
	Monthly     PeriodStats      `json:"monthly"`
	Maintenance MaintenanceStats `json:"maintenance"`
	Session     SessionStats     `json:"session"`
}

// DemoDataset is the full bundle a UI render needs, produced in one call.
type DemoDataset struct {
	Stats              Statistics     `json:"stats"`
	Weekly             []WeeklyUsage  `json:"weekly"`
	HourlyDistribution []HourlyUsage  `json:"hourlyDistribution"`
	BrewHistory        []BrewRecord   `json:"brewHistory"`
	PowerHistory       []PowerSample  `json:"powerHistory"`
	DailyHistory       []DailySummary `json:"dailyHistory"`
}

// LogEntry 演示日志视图的一条固定日志
type LogEntry struct {
	Timestamp int64  `json:"timestamp"`
	Level     string `json:"level"` // "debug" | "info" | "warn"
	Source    string `json:"source"`
	Message   string `json:"message"`
}
