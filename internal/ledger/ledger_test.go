package ledger

import (
	"testing"

	"github.com/danielpatrickdp/launchgate/internal/decision"
)

func TestNew_UniqueIDsIdenticalContent(t *testing.T) {
	risk := 55.0
	p := Params{
		Input: decision.Input{
			GameID:    "game-1",
			PlayerID:  "player-1",
			SessionID: "session-1",
			Playtime:  300,
			Deaths:    4,
			Restarts:  2,
			EarlyQuit: true,
		},
		Decision:    decision.VerdictIterate,
		Source:      SourceAI,
		RiskScore:   &risk,
		Confidence:  0.7,
		Explanation: "short sessions with repeated deaths",
	}

	a := New(p)
	b := New(p)

	if a.EntryID == "" || b.EntryID == "" {
		t.Fatal("expected non-empty entry ids")
	}
	if a.EntryID == b.EntryID {
		t.Errorf("two entries share id %q; ids must be globally unique", a.EntryID)
	}

	// Everything except id and timestamp is identical.
	a.EntryID, b.EntryID = "", ""
	a.CreatedAt = b.CreatedAt
	if a.Snapshot != b.Snapshot || a.Decision != b.Decision || a.Source != b.Source ||
		*a.RiskScore != *b.RiskScore || a.Confidence != b.Confidence {
		t.Errorf("entries from identical params differ: %+v vs %+v", a, b)
	}
}

func TestNew_SnapshotDefaults(t *testing.T) {
	e := New(Params{
		Input:    decision.Input{GameID: "g", PlayerID: "p", SessionID: "s"},
		Decision: decision.VerdictGo,
		Source:   SourceAI,
	})

	want := InputSnapshot{}
	if e.Snapshot != want {
		t.Errorf("snapshot: got %+v, want zero values for missing fields", e.Snapshot)
	}
	if e.RiskScore != nil {
		t.Errorf("risk score: got %v, want nil", *e.RiskScore)
	}
	if e.Trend != nil || e.Volatility != nil || e.Shock != nil {
		t.Error("temporal fields should stay nil when analysis did not run")
	}
}

func TestNew_TimestampsUTC(t *testing.T) {
	e := New(Params{Input: decision.Input{GameID: "g"}, Decision: decision.VerdictGo, Source: SourceAI})
	if e.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}
	if _, offset := e.CreatedAt.Zone(); offset != 0 {
		t.Errorf("timestamp not UTC: offset %d", offset)
	}
}

func TestNew_RuleSourcedEntry(t *testing.T) {
	e := New(Params{
		Input:      decision.Input{GameID: "g", PlayerID: "p", SessionID: "s", Deaths: 9},
		Decision:   decision.VerdictKill,
		Source:     SourceRuleEngine,
		Confidence: 0.9,
	})
	if e.Source != SourceRuleEngine {
		t.Errorf("source: got %q, want RULE_ENGINE", e.Source)
	}
	if e.RiskScore != nil {
		t.Error("rule-sourced entries carry no numeric risk score")
	}
	if e.Snapshot.Deaths != 9 {
		t.Errorf("snapshot deaths: got %d, want 9", e.Snapshot.Deaths)
	}
}
