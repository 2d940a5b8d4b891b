// Package counterfactual compares the three possible launch decisions under
// fixed response functions and picks the one with minimum regret. It is a
// decision-support artifact only: the model's verdict is never overridden.
package counterfactual

import (
	"math"

	"github.com/danielpatrickdp/launchgate/internal/decision"
)

// #region base

// Base is the normalized starting point for a simulation. All fields are
// clamped on entry: risk to [0,1], confidence to [0.2,0.95], momentum to
// [-10,10].
type Base struct {
	Risk       float64
	Confidence float64
	Momentum   float64
}

func (b Base) clamped() Base {
	return Base{
		Risk:       clamp(b.Risk, 0, 1),
		Confidence: clamp(b.Confidence, 0.2, 0.95),
		Momentum:   clamp(b.Momentum, -10, 10),
	}
}

// #endregion base

// #region outcome

// Outcome is the simulated result of committing to one decision.
type Outcome struct {
	ExpectedRisk float64 `json:"expected_risk"`
	Burn         float64 `json:"burn"`
	Upside       float64 `json:"upside"`
	Confidence   float64 `json:"confidence"`
	Regret       float64 `json:"regret"`
}

// Set holds all three simulated outcomes plus the regret-minimizing verdict.
type Set struct {
	Outcomes    map[decision.Verdict]Outcome `json:"outcomes"`
	Safest      decision.Verdict             `json:"safest_decision"`
	RegretFloor float64                      `json:"regret_floor"`
}

// #endregion outcome

// #region simulate

// tieOrder fixes the safest-decision pick on exact regret ties: the
// reversible option wins, the irreversible one loses.
var tieOrder = []decision.Verdict{decision.VerdictIterate, decision.VerdictKill, decision.VerdictGo}

// Simulate runs the three fixed response functions against the base and
// returns every outcome alongside the minimum-regret verdict.
func Simulate(base Base) Set {
	b := base.clamped()

	outcomes := map[decision.Verdict]Outcome{
		decision.VerdictGo: score(Outcome{
			ExpectedRisk: clamp(b.Risk+0.18+b.Momentum*0.05, 0, 1),
			Burn:         0.9,
			Upside:       0.85,
			Confidence:   clamp(b.Confidence-0.15, 0.2, 0.95),
		}),
		decision.VerdictIterate: score(Outcome{
			ExpectedRisk: clamp(b.Risk-0.25, 0, 1),
			Burn:         0.5,
			Upside:       0.6,
			Confidence:   clamp(b.Confidence+0.1, 0.2, 0.95),
		}),
		decision.VerdictKill: score(Outcome{
			ExpectedRisk: 0.05,
			Burn:         0.1,
			Upside:       0.15,
			Confidence:   clamp(b.Confidence+0.05, 0.2, 0.95),
		}),
	}

	winner := safest(outcomes)
	return Set{
		Outcomes:    outcomes,
		Safest:      winner,
		RegretFloor: math.Round(outcomes[winner].Regret*100) / 100,
	}
}

// safest returns the minimum-regret verdict; ties resolve by tieOrder.
func safest(outcomes map[decision.Verdict]Outcome) decision.Verdict {
	winner := tieOrder[0]
	for _, v := range tieOrder[1:] {
		if outcomes[v].Regret < outcomes[winner].Regret {
			winner = v
		}
	}
	return winner
}

// score fills in the regret for an otherwise-complete outcome.
func score(o Outcome) Outcome {
	o.Regret = clamp(o.Burn*3+(1-o.Upside)*3+o.ExpectedRisk*4, 0, 10)
	return o
}

// #endregion simulate

// #region helpers

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
