package rules

import (
	"context"

	"github.com/danielpatrickdp/launchgate/internal/decision"
)

// #region definition

// Definition is one override rule as stored by the external rule manager.
// The evaluator only reads these. A nil MinValue or MaxValue means the range
// is unbounded on that side.
type Definition struct {
	RuleKey     string
	MinValue    *float64
	MaxValue    *float64
	Decision    decision.Verdict
	Priority    int
	Active      bool
	Description string
}

// #endregion definition

// #region match

// MatchSource identifies where an override decision came from.
const MatchSource = "DB_RULE"

// Match is the result of a rule firing against the metric map.
type Match struct {
	Decision    decision.Verdict
	MatchedRule string
	Value       float64
	MinValue    *float64
	MaxValue    *float64
	Priority    int
	Description string
	Source      string
}

// #endregion match

// #region source

// Source supplies active rules ordered by ascending priority. The ordering
// must be stable so priority ties resolve deterministically.
type Source interface {
	ActiveRules(ctx context.Context) ([]Definition, error)
}

// #endregion source
