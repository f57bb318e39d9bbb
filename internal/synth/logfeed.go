package synth

import (
	"time"

	"github.com/brewos-io/app/internal/models"
)

// buildLogFeed returns the fixed ten-entry log sequence the log viewer shows
// as first-paint demo content. Offsets are seconds before the engine's
// construction time, spanning roughly the preceding five minutes.
func buildLogFeed(now time.Time) []models.LogEntry {
	entries := []struct {
		offsetSec int64
		level     string
		source    string
		message   string
	}{
		{295, "info", "boot", "controller firmware 2.4.1 started"},
		{290, "info", "mqtt", "connected to broker tcp://homeassistant.local:1883"},
		{284, "debug", "heater", "PID loop engaged, target 94.0°C"},
		{241, "info", "heater", "boiler at target temperature (94.1°C)"},
		{198, "info", "brew", "shot started: dose 18.2g, target ratio 2.0"},
		{170, "debug", "pump", "peak pressure 9.3 bar"},
		{169, "info", "brew", "shot finished: 36.4g in 28.3s"},
		{120, "warn", "water", "tank level below 30%"},
		{64, "debug", "power", "meter report: avg 1340W over last interval"},
		{12, "info", "steam", "steam cycle complete"},
	}

	feed := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		feed = append(feed, models.LogEntry{
			Timestamp: now.Add(-time.Duration(e.offsetSec) * time.Second).Unix(),
			Level:     e.level,
			Source:    e.source,
			Message:   e.message,
		})
	}
	return feed
}
