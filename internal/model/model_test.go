package model

import (
	"testing"

	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/danielpatrickdp/launchgate/internal/signals"
)

func TestAssess_HealthyRecord(t *testing.T) {
	// 10 minutes, no deaths, no restarts, no early quit: every component zero.
	d := signals.NewDeriver(signals.DefaultDeriverConfig())
	in := decision.Input{Playtime: 600}

	got := Assess(MetricsFromInput(in, d.Derive(in, nil)), DefaultShortSessionMinutes)
	if got.RiskScore != 0 {
		t.Errorf("risk: got %v, want 0", got.RiskScore)
	}
	if got.Decision != decision.VerdictGo {
		t.Errorf("decision: got %q, want GO", got.Decision)
	}
}

func TestAssess_WorstCaseClampsTo100(t *testing.T) {
	// 5-minute session, 8 deaths, 6 restarts (1.2/min), early quit:
	// 30+25+25+20 = 100 exactly at the clamp.
	d := signals.NewDeriver(signals.DefaultDeriverConfig())
	in := decision.Input{Playtime: 300, Deaths: 8, Restarts: 6, EarlyQuit: true}

	got := Assess(MetricsFromInput(in, d.Derive(in, nil)), DefaultShortSessionMinutes)
	if got.RiskScore != 100 {
		t.Errorf("risk: got %v, want 100", got.RiskScore)
	}
	if got.Decision != decision.VerdictKill {
		t.Errorf("decision: got %q, want KILL", got.Decision)
	}
}

func TestAssess_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
		want decision.Verdict
		risk float64
	}{
		{"go-below-40", Metrics{AvgSessionMinutes: 10, RestartRate: 0.5}, decision.VerdictGo, 20},
		{"single-component-stays-go", Metrics{AvgSessionMinutes: 10, AvgDeaths: 6, RestartRate: 0}, decision.VerdictGo, 25},
		{"iterate-band", Metrics{AvgSessionMinutes: 5, AvgDeaths: 6}, decision.VerdictIterate, 55},
		{"kill-at-70", Metrics{AvgSessionMinutes: 5, EarlyQuitRate: 1, AvgDeaths: 2, RestartRate: 0.5}, decision.VerdictKill, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.m, DefaultShortSessionMinutes)
			if got.RiskScore != tt.risk {
				t.Errorf("risk: got %v, want %v", got.RiskScore, tt.risk)
			}
			if got.Decision != tt.want {
				t.Errorf("decision: got %q, want %q", got.Decision, tt.want)
			}
		})
	}
}

func TestAssess_RiskAlwaysBounded(t *testing.T) {
	extremes := []Metrics{
		{},
		{AvgSessionMinutes: -5, EarlyQuitRate: 10, AvgDeaths: 1000, RestartRate: 99},
		{AvgSessionMinutes: 1e9},
	}
	for _, m := range extremes {
		got := Assess(m, DefaultShortSessionMinutes)
		if got.RiskScore < 0 || got.RiskScore > 100 {
			t.Errorf("risk out of bounds for %+v: %v", m, got.RiskScore)
		}
	}
}

func TestAssess_DominantCategory(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
		want string
	}{
		{"retention-dominates", Metrics{AvgSessionMinutes: 2, EarlyQuitRate: 1, AvgDeaths: 6}, "retention"},
		{"difficulty-dominates", Metrics{AvgSessionMinutes: 10, AvgDeaths: 8, RestartRate: 0.5}, "difficulty"},
		{"fun-dominates", Metrics{AvgSessionMinutes: 10, RestartRate: 0.5}, "fun"},
		// All-zero ties resolve by retention > difficulty > fun.
		{"tie-prefers-retention", Metrics{AvgSessionMinutes: 10}, "retention"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.m, DefaultShortSessionMinutes)
			if got.PrimaryCategory != tt.want {
				t.Errorf("category: got %q, want %q", got.PrimaryCategory, tt.want)
			}
		})
	}
}

func TestMetricsFromInput_SessionsOverridePlaytime(t *testing.T) {
	d := signals.NewDeriver(signals.DefaultDeriverConfig())
	in := decision.Input{
		Playtime: 3600, // would be 60 min on its own
		Sessions: []decision.Session{{DurationSec: 120}, {DurationSec: 240}},
	}

	m := MetricsFromInput(in, d.Derive(in, nil))
	if m.AvgSessionMinutes != 3 {
		t.Errorf("avg session minutes: got %v, want 3", m.AvgSessionMinutes)
	}
}
