package recommend

import (
	"testing"

	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/danielpatrickdp/launchgate/internal/insight"
)

func countPriority(recs []Recommendation, priority string) int {
	n := 0
	for _, r := range recs {
		if r.Priority == priority {
			n++
		}
	}
	return n
}

func TestGenerate_KillEmitsTwoCritical(t *testing.T) {
	recs := Generate(decision.VerdictKill, 90, insight.RiskUnclear)
	if got := countPriority(recs, PriorityCritical); got != 2 {
		t.Errorf("critical actions: got %d, want 2", got)
	}
}

func TestGenerate_HighRiskGoStillCritical(t *testing.T) {
	// risk > 75 triggers critical actions regardless of verdict.
	recs := Generate(decision.VerdictGo, 80, insight.RiskUnclear)
	if got := countPriority(recs, PriorityCritical); got != 2 {
		t.Errorf("critical actions: got %d, want 2", got)
	}
}

func TestGenerate_Iterate(t *testing.T) {
	recs := Generate(decision.VerdictIterate, 50, insight.RiskUnclear)
	if got := countPriority(recs, PriorityHigh); got != 1 {
		t.Errorf("high actions: got %d, want 1", got)
	}
	if got := countPriority(recs, PriorityCritical); got != 0 {
		t.Errorf("critical actions: got %d, want 0", got)
	}
}

func TestGenerate_InsightActions(t *testing.T) {
	abandon := Generate(decision.VerdictGo, 10, insight.RiskEarlyAbandonment)
	if len(abandon) != 1 || abandon[0].Priority != PriorityMedium {
		t.Errorf("abandonment: got %+v, want one medium onboarding action", abandon)
	}

	spike := Generate(decision.VerdictGo, 10, insight.RiskDifficultySpike)
	if len(spike) != 1 || spike[0].Priority != PriorityMedium {
		t.Errorf("difficulty spike: got %+v, want one medium action", spike)
	}
}

func TestGenerate_UnionOfConditions(t *testing.T) {
	// ITERATE at risk 65 with an abandonment insight fires three branches:
	// the iterate action, the onboarding action, and the risk guardrail.
	recs := Generate(decision.VerdictIterate, 65, insight.RiskEarlyAbandonment)
	if len(recs) != 3 {
		t.Fatalf("recommendations: got %d, want 3 (%+v)", len(recs), recs)
	}
	// Table order is stable: high, medium, warning.
	wantOrder := []string{PriorityHigh, PriorityMedium, PriorityWarning}
	for i, want := range wantOrder {
		if recs[i].Priority != want {
			t.Errorf("position %d: got %q, want %q", i, recs[i].Priority, want)
		}
	}
}

func TestGenerate_CleanGoIsEmpty(t *testing.T) {
	recs := Generate(decision.VerdictGo, 0, insight.RiskUnclear)
	if len(recs) != 0 {
		t.Errorf("clean GO: got %+v, want no recommendations", recs)
	}
}
