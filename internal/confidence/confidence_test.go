package confidence

import (
	"testing"

	"github.com/danielpatrickdp/launchgate/internal/signals"
)

func TestScore_Levels(t *testing.T) {
	tests := []struct {
		name     string
		levels   map[string]signals.Level
		fromRule bool
		weights  map[string]float64
		want     float64
	}{
		{"empty-baseline", nil, false, nil, 0.5},
		{"one-high", map[string]signals.Level{"deaths": signals.LevelHigh}, false, nil, 0.65},
		{"one-low", map[string]signals.Level{"deaths": signals.LevelLow}, false, nil, 0.45},
		{"medium-neutral", map[string]signals.Level{"deaths": signals.LevelMedium}, false, nil, 0.5},
		{
			name: "mixed",
			levels: map[string]signals.Level{
				"deaths":   signals.LevelHigh,
				"restarts": signals.LevelLow,
				"playtime": signals.LevelMedium,
			},
			want: 0.6,
		},
		{"rule-bonus", map[string]signals.Level{"deaths": signals.LevelHigh}, true, nil, 0.85},
		{
			name:    "weighted-high",
			levels:  map[string]signals.Level{"deaths": signals.LevelHigh},
			weights: map[string]float64{"deaths": 2},
			want:    0.8,
		},
		{
			name:    "absent-weight-defaults-to-one",
			levels:  map[string]signals.Level{"deaths": signals.LevelHigh},
			weights: map[string]float64{"restarts": 3},
			want:    0.65,
		},
		{
			name: "clamped-at-one",
			levels: map[string]signals.Level{
				"a": signals.LevelHigh, "b": signals.LevelHigh, "c": signals.LevelHigh, "d": signals.LevelHigh,
			},
			weights:  map[string]float64{"a": 3, "b": 3, "c": 3, "d": 3},
			fromRule: true,
			want:     1,
		},
		{
			name:    "clamped-at-zero",
			levels:  map[string]signals.Level{"a": signals.LevelLow, "b": signals.LevelLow},
			weights: map[string]float64{"a": 10, "b": 10},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.levels, tt.fromRule, tt.weights)
			if got != tt.want {
				t.Errorf("score: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_Pure(t *testing.T) {
	levels := map[string]signals.Level{
		"deaths":   signals.LevelHigh,
		"restarts": signals.LevelLow,
	}
	weights := map[string]float64{"deaths": 1.5}

	first := Score(levels, false, weights)
	for i := 0; i < 50; i++ {
		if got := Score(levels, false, weights); got != first {
			t.Fatalf("call %d: got %v, want %v (scorer must be pure)", i, got, first)
		}
	}
}

func TestScore_AlwaysBounded(t *testing.T) {
	cases := []map[string]float64{
		nil,
		{"deaths": 100},
		{"deaths": -100},
	}
	levels := map[string]signals.Level{"deaths": signals.LevelHigh, "restarts": signals.LevelLow}
	for _, w := range cases {
		for _, fromRule := range []bool{false, true} {
			got := Score(levels, fromRule, w)
			if got < 0 || got > 1 {
				t.Errorf("score out of bounds: %v (weights=%v fromRule=%v)", got, w, fromRule)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.9, "HIGH"},
		{0.75, "HIGH"},
		{0.5, "MEDIUM"},
		{0.2, "LOW"},
	}
	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%v): got %q, want %q", tt.score, got, tt.want)
		}
	}
}
