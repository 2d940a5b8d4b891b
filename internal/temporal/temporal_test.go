package temporal

import "testing"

func TestAnalyze_InsufficientHistory(t *testing.T) {
	neutral := Profile{Trend: TrendStable, Volatility: 0, Shock: false, Stability: StabilityMedium}

	for _, values := range [][]float64{nil, {}, {50}, {50, 60}} {
		got := Analyze(values)
		if got != neutral {
			t.Errorf("Analyze(%v): got %+v, want neutral default", values, got)
		}
	}
}

func TestAnalyze_Trend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		// Newest first: [70,50,40] → diffs [20,10], avg 15 → improving.
		{"falling-risk-improves", []float64{70, 50, 40}, TrendImproving},
		{"rising-risk-declines", []float64{40, 50, 70}, TrendDeclining},
		{"flat", []float64{50, 50, 50}, TrendStable},
		{"inside-band", []float64{50, 49, 48}, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.values)
			if got.Trend != tt.want {
				t.Errorf("trend: got %q, want %q", got.Trend, tt.want)
			}
		})
	}
}

func TestAnalyze_Shock(t *testing.T) {
	withShock := Analyze([]float64{90, 40, 45})
	if !withShock.Shock {
		t.Error("gap of 50 between newest values should register as shock")
	}
	if withShock.Stability != StabilityLow {
		t.Errorf("stability under shock: got %q, want Low", withShock.Stability)
	}

	noShock := Analyze([]float64{50, 45, 40})
	if noShock.Shock {
		t.Error("gap of 5 should not register as shock")
	}
}

func TestAnalyze_Stability(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"calm-is-high", []float64{50, 48, 52, 49}, StabilityHigh},
		{"rough-is-low", []float64{90, 70, 20, 60}, StabilityLow},
		{"middling-is-medium", []float64{60, 45, 40, 65}, StabilityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.values)
			if got.Stability != tt.want {
				t.Errorf("stability: got %q, want %q (profile %+v)", got.Stability, tt.want, got)
			}
		})
	}
}

func TestAnalyze_VolatilityRounded(t *testing.T) {
	got := Analyze([]float64{50, 48, 52, 49})
	if got.Volatility != float64(int(got.Volatility)) {
		t.Errorf("volatility should be rounded to an integer, got %v", got.Volatility)
	}
}
