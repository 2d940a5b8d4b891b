// Package recommend turns a verdict, risk score, and insight into an
// ordered action list. Conditions are independent: several can fire on one
// record and the output is their union, appended in table order so
// consumers may safely read only the first N entries.
package recommend

import (
	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/danielpatrickdp/launchgate/internal/insight"
)

// #region types

// Action priorities.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityWarning  = "warning"
)

// Recommendation is one suggested action with its urgency and trigger.
type Recommendation struct {
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

// #endregion types

// #region generate

// Generate builds the action list for a scored decision.
func Generate(verdict decision.Verdict, riskScore float64, primaryRisk string) []Recommendation {
	var out []Recommendation

	if verdict == decision.VerdictKill || riskScore > 75 {
		out = append(out,
			Recommendation{
				Priority: PriorityCritical,
				Action:   "halt paid acquisition for this build",
				Reason:   "risk level rules out further spend",
			},
			Recommendation{
				Priority: PriorityCritical,
				Action:   "schedule a post-mortem with the design team",
				Reason:   "core loop shows launch-blocking behavior",
			},
		)
	}

	if verdict == decision.VerdictIterate {
		out = append(out, Recommendation{
			Priority: PriorityHigh,
			Action:   "ship a targeted fix and rerun the playtest cohort",
			Reason:   "signals are recoverable with iteration",
		})
	}

	switch primaryRisk {
	case insight.RiskEarlyAbandonment:
		out = append(out, Recommendation{
			Priority: PriorityMedium,
			Action:   "rework the first-session onboarding flow",
			Reason:   "players abandon before the core loop lands",
		})
	case insight.RiskDifficultySpike:
		out = append(out, Recommendation{
			Priority: PriorityMedium,
			Action:   "flatten the difficulty curve around repeated death points",
			Reason:   "death clustering indicates a spike, not a skill ramp",
		})
	}

	if riskScore > 60 {
		out = append(out, Recommendation{
			Priority: PriorityWarning,
			Action:   "gate any wider rollout on a follow-up cohort",
			Reason:   "risk score above the guardrail threshold",
		})
	}

	return out
}

// #endregion generate
