// Package model computes the deterministic risk score and launch verdict.
// No learned weights: a fixed weighted sum over four behavioral metrics,
// clamped to [0,100], mapped to GO/ITERATE/KILL by threshold.
package model

import (
	"fmt"

	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/danielpatrickdp/launchgate/internal/signals"
)

// #region weights

// Component weights and trigger thresholds.
const (
	WeightShortSessions = 30 // avg session under the retention floor
	WeightEarlyQuit     = 25 // early-quit rate above 0.4
	WeightDeaths        = 25 // avg deaths above 5 (difficulty spike)
	WeightRestarts      = 20 // restart rate above 0.35/min (frustration)

	earlyQuitRateMax = 0.4
	avgDeathsMax     = 5.0
	restartRateMax   = 0.35
)

// Verdict thresholds on the clamped score.
const (
	iterateFloor = 40
	killFloor    = 70
)

// DefaultShortSessionMinutes is the retention floor for average session length.
const DefaultShortSessionMinutes = 8.0

// #endregion weights

// #region metrics

// Metrics are the four aggregates the model scores.
type Metrics struct {
	AvgSessionMinutes float64
	EarlyQuitRate     float64
	AvgDeaths         float64
	RestartRate       float64 // restarts per minute
}

// MetricsFromInput aggregates one telemetry record into model metrics.
// Average session length comes from attached sub-sessions when present,
// otherwise from the record's own playtime.
func MetricsFromInput(in decision.Input, derived signals.Derived) Metrics {
	avgMinutes := in.Playtime / 60
	if len(in.Sessions) > 0 {
		var total float64
		for _, s := range in.Sessions {
			total += s.DurationSec
		}
		avgMinutes = total / float64(len(in.Sessions)) / 60
	}

	quitRate := 0.0
	if in.EarlyQuit {
		quitRate = 1.0
	}

	return Metrics{
		AvgSessionMinutes: avgMinutes,
		EarlyQuitRate:     quitRate,
		AvgDeaths:         float64(in.Deaths),
		RestartRate:       derived.RestartsPerMin,
	}
}

// #endregion metrics

// #region assessment

// Assessment is the model's scored output. Built once per invocation and
// never mutated afterwards.
type Assessment struct {
	RiskScore       float64
	Decision        decision.Verdict
	PrimaryCategory string
	Signals         []string
}

// #endregion assessment

// #region assess

// Assess runs the weighted sum and threshold mapping.
// shortSessionMinutes is the configured retention floor; pass
// DefaultShortSessionMinutes when no override applies.
func Assess(m Metrics, shortSessionMinutes float64) Assessment {
	var score int
	var notes []string

	// Category buckets for the dominant-contributor pick. Ties break by the
	// fixed precedence retention > difficulty > fun.
	retention, difficulty, fun := 0, 0, 0

	if m.AvgSessionMinutes < shortSessionMinutes {
		score += WeightShortSessions
		retention += WeightShortSessions
		notes = append(notes, fmt.Sprintf("avg session %.1f min under %.1f min floor", m.AvgSessionMinutes, shortSessionMinutes))
	}
	if m.EarlyQuitRate > earlyQuitRateMax {
		score += WeightEarlyQuit
		retention += WeightEarlyQuit
		notes = append(notes, fmt.Sprintf("early-quit rate %.2f above %.2f", m.EarlyQuitRate, earlyQuitRateMax))
	}
	if m.AvgDeaths > avgDeathsMax {
		score += WeightDeaths
		difficulty += WeightDeaths
		notes = append(notes, fmt.Sprintf("avg deaths %.1f above %.1f", m.AvgDeaths, avgDeathsMax))
	}
	if m.RestartRate > restartRateMax {
		score += WeightRestarts
		fun += WeightRestarts
		notes = append(notes, fmt.Sprintf("restart rate %.2f/min above %.2f", m.RestartRate, restartRateMax))
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	if len(notes) == 0 {
		notes = append(notes, "no risk components triggered")
	}

	return Assessment{
		RiskScore:       float64(score),
		Decision:        verdictFor(score),
		PrimaryCategory: dominantCategory(retention, difficulty, fun),
		Signals:         notes,
	}
}

// #endregion assess

// #region helpers

func verdictFor(score int) decision.Verdict {
	switch {
	case score >= killFloor:
		return decision.VerdictKill
	case score >= iterateFloor:
		return decision.VerdictIterate
	default:
		return decision.VerdictGo
	}
}

func dominantCategory(retention, difficulty, fun int) string {
	// >= keeps the precedence ordering on ties.
	if retention >= difficulty && retention >= fun {
		return "retention"
	}
	if difficulty >= fun {
		return "difficulty"
	}
	return "fun"
}

// #endregion helpers
