// Package confidence scores trust in a decision from the classified signal
// set. The scorer is pure: same signals, source, and weight table always
// produce the same value.
package confidence

import (
	"math"

	"github.com/danielpatrickdp/launchgate/internal/signals"
)

// #region constants

const (
	base          = 0.5
	highBoost     = 0.15
	lowPenalty    = 0.05
	ruleBonus     = 0.2 // flat boost when the decision came from a DB rule
	defaultWeight = 1.0
)

// #endregion constants

// #region score

// Score computes the bounded confidence in [0,1], rounded to two decimals.
// HIGH signals push confidence up, LOW signals pull it down, MEDIUM is
// neutral. weights may be nil; absent keys default to weight 1.
func Score(levels map[string]signals.Level, fromRule bool, weights map[string]float64) float64 {
	score := base

	for key, level := range levels {
		w := defaultWeight
		if weights != nil {
			if v, ok := weights[key]; ok {
				w = v
			}
		}
		switch level {
		case signals.LevelHigh:
			score += highBoost * w
		case signals.LevelLow:
			score -= lowPenalty * w
		}
	}

	if fromRule {
		score += ruleBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return math.Round(score*100) / 100
}

// #endregion score

// #region label

// Label buckets a numeric confidence into LOW/MEDIUM/HIGH for display.
func Label(score float64) string {
	switch {
	case score >= 0.75:
		return "HIGH"
	case score >= 0.45:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// #endregion label
