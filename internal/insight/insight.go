// Package insight detects the dominant qualitative risk pattern in a
// telemetry record. Its output is advisory: only the recommendation
// generator consumes it, scoring never does.
package insight

import (
	"fmt"

	"github.com/danielpatrickdp/launchgate/internal/decision"
)

// #region risk-patterns

// Known primary risk patterns, in precedence order.
const (
	RiskEarlyAbandonment = "early_abandonment"
	RiskDifficultySpike  = "difficulty_spike"
	RiskUnclear          = "unclear"
)

// shortSessionSec is the cutoff below which a sub-session counts as abandoned.
const shortSessionSec = 180

// deathSpikeCount is the death-event count that reads as a difficulty spike.
const deathSpikeCount = 3

// #endregion risk-patterns

// #region summary

// Summary is the extracted qualitative view of one record.
type Summary struct {
	PrimaryRisk string   `json:"primary_risk"`
	Signals     []string `json:"signals"`
}

// #endregion summary

// #region extract

// Extract scans sessions and events for the dominant risk pattern.
// Abandonment takes precedence over difficulty; Signals always carries at
// least one human-readable entry.
func Extract(in decision.Input) Summary {
	s := Summary{PrimaryRisk: RiskUnclear}

	if len(in.Sessions) > 0 {
		short := 0
		for _, sess := range in.Sessions {
			if sess.DurationSec < shortSessionSec {
				short++
			}
		}
		if short*2 > len(in.Sessions) {
			s.PrimaryRisk = RiskEarlyAbandonment
			s.Signals = append(s.Signals,
				fmt.Sprintf("%d of %d sessions ended before %ds", short, len(in.Sessions), shortSessionSec))
		}
	}

	deaths := 0
	for _, ev := range in.Events {
		if ev.Type == "death" {
			deaths++
		}
	}
	if deaths >= deathSpikeCount {
		// Abandonment, once detected, keeps precedence.
		if s.PrimaryRisk == RiskUnclear {
			s.PrimaryRisk = RiskDifficultySpike
		}
		s.Signals = append(s.Signals, fmt.Sprintf("%d death events recorded", deaths))
	}

	if len(s.Signals) == 0 {
		s.Signals = append(s.Signals, "no dominant risk pattern in sessions or events")
	}

	return s
}

// #endregion extract
