// Package rules implements the priority-ordered override check that runs
// before model scoring. The scan is first-match-wins, not best-match.
package rules

import "context"

// #region evaluator

// Evaluator checks a metric map against the external rule set.
type Evaluator struct {
	source Source
}

// NewEvaluator creates an Evaluator reading from the given rule source.
func NewEvaluator(source Source) *Evaluator {
	return &Evaluator{source: source}
}

// #endregion evaluator

// #region check

// Check fetches active rules and returns the first match in priority order,
// or nil when nothing fires. A store failure also yields a nil match —
// the fallback model stays available when the rule store is down — but the
// error is returned so callers can observe the outage.
func (e *Evaluator) Check(ctx context.Context, metrics map[string]float64) (*Match, error) {
	defs, err := e.source.ActiveRules(ctx)
	if err != nil {
		return nil, err
	}
	return FirstMatch(defs, metrics), nil
}

// #endregion check

// #region first-match

// FirstMatch scans rules in the given order and returns the first whose
// range contains the metric value. Rules whose metric is absent are skipped.
// Evaluation stops at the first hit.
func FirstMatch(defs []Definition, metrics map[string]float64) *Match {
	for _, def := range defs {
		if !def.Active {
			continue
		}
		value, ok := metrics[def.RuleKey]
		if !ok {
			continue
		}
		if def.MinValue != nil && value < *def.MinValue {
			continue
		}
		if def.MaxValue != nil && value > *def.MaxValue {
			continue
		}
		return &Match{
			Decision:    def.Decision,
			MatchedRule: def.RuleKey,
			Value:       value,
			MinValue:    def.MinValue,
			MaxValue:    def.MaxValue,
			Priority:    def.Priority,
			Description: def.Description,
			Source:      MatchSource,
		}
	}
	return nil
}

// #endregion first-match
