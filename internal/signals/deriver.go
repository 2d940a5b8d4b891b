package signals

import (
	"math"

	"github.com/danielpatrickdp/launchgate/internal/decision"
)

// #region deriver

// Deriver normalizes raw telemetry into comparable per-minute and
// categorical signals.
type Deriver struct {
	config DeriverConfig
}

// NewDeriver creates a Deriver with the given thresholds.
func NewDeriver(config DeriverConfig) *Deriver {
	return &Deriver{config: config}
}

// #endregion deriver

// #region derive

// Derive computes all signals from one input record plus optional history.
// history may be empty; baseline deviation degrades to 0.
func (d *Deriver) Derive(in decision.Input, history []decision.HistoryRecord) Derived {
	// Divisor floors at one minute so near-zero playtime cannot blow up rates.
	minutes := math.Max(in.Playtime/60, 1)

	deathsPerMin := float64(in.Deaths) / minutes
	restartsPerMin := float64(in.Restarts) / minutes

	earlyExit := 0
	if in.EarlyQuit {
		earlyExit = 1
	}

	derived := Derived{
		DeathsPerMin:          deathsPerMin,
		RestartsPerMin:        restartsPerMin,
		EarlyExitFlag:         earlyExit,
		SessionDepth:          len(in.Sessions),
		DeviationFromBaseline: baselineDeviation(history),
		Levels:                d.classify(in),
	}

	derived.Metrics = map[string]float64{
		"deaths":                  float64(in.Deaths),
		"restarts":                float64(in.Restarts),
		"playtime":                in.Playtime,
		"deaths_per_min":          deathsPerMin,
		"restarts_per_min":        restartsPerMin,
		"early_quit":              float64(earlyExit),
		"session_depth":           float64(derived.SessionDepth),
		"deviation_from_baseline": derived.DeviationFromBaseline,
	}

	return derived
}

// #endregion derive

// #region classify

// classify maps raw counts to severity levels using fixed thresholds.
// Playtime is inverted: less playtime reads as more severe.
func (d *Deriver) classify(in decision.Input) map[string]Level {
	levels := map[string]Level{
		"deaths":   countLevel(in.Deaths, d.config.DeathsMedium, d.config.DeathsHigh),
		"restarts": countLevel(in.Restarts, d.config.RestartsMedium, d.config.RestartsHigh),
	}

	switch {
	case in.Playtime < d.config.PlaytimeLowSec:
		levels["playtime"] = LevelHigh
	case in.Playtime < d.config.PlaytimeMidSec:
		levels["playtime"] = LevelMedium
	default:
		levels["playtime"] = LevelLow
	}

	if in.EarlyQuit {
		levels["early_quit"] = LevelHigh
	} else {
		levels["early_quit"] = LevelLow
	}

	return levels
}

// #endregion classify

// #region helpers

// countLevel buckets a count against medium/high thresholds.
func countLevel(n, medium, high int) Level {
	switch {
	case n >= high:
		return LevelHigh
	case n >= medium:
		return LevelMedium
	default:
		return LevelLow
	}
}

// baselineDeviation measures how far the historical average risk sits from
// the neutral midpoint of 50, normalized to [0,1]. Empty history → 0.
func baselineDeviation(history []decision.HistoryRecord) float64 {
	if len(history) == 0 {
		return 0
	}
	var sum float64
	for _, h := range history {
		sum += h.RiskScore
	}
	avg := sum / float64(len(history))
	return math.Abs(avg-50) / 50
}

// #endregion helpers
