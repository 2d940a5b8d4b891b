// Package temporal profiles a game's risk trajectory: trend direction,
// volatility, shock detection, and a stability grade.
package temporal

import "math"

// #region profile

// Trend directions.
const (
	TrendImproving = "IMPROVING"
	TrendDeclining = "DECLINING"
	TrendStable    = "STABLE"
)

// Stability grades.
const (
	StabilityLow    = "Low"
	StabilityMedium = "Medium"
	StabilityHigh   = "High"
)

// Profile is the temporal view over a game's risk history.
type Profile struct {
	Trend      string  `json:"trend"`
	Volatility float64 `json:"volatility"`
	Shock      bool    `json:"shock"`
	Stability  string  `json:"stability"`
}

// #endregion profile

// #region thresholds

const (
	minPoints       = 3
	trendBand       = 2.0  // |avg diff| inside this band reads as stable
	shockGap        = 25.0 // jump between the two newest values
	volatilityCalm  = 8.0
	volatilityRough = 18.0
)

// #endregion thresholds

// #region analyze

// Analyze profiles a newest-first sequence of risk scores. Fewer than three
// points yields the neutral default rather than an error.
func Analyze(values []float64) Profile {
	if len(values) < minPoints {
		return Profile{Trend: TrendStable, Volatility: 0, Shock: false, Stability: StabilityMedium}
	}

	// Newest-first ordering: a falling risk sequence produces positive diffs,
	// which reads as improvement.
	diffs := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		diffs = append(diffs, values[i-1]-values[i])
	}

	var diffSum float64
	for _, d := range diffs {
		diffSum += d
	}
	avgDiff := diffSum / float64(len(diffs))

	trend := TrendStable
	switch {
	case avgDiff > trendBand:
		trend = TrendImproving
	case avgDiff < -trendBand:
		trend = TrendDeclining
	}

	volatility := math.Round(stddev(values))
	shock := math.Abs(values[0]-values[1]) > shockGap

	stability := StabilityMedium
	switch {
	case shock || volatility > volatilityRough:
		stability = StabilityLow
	case volatility < volatilityCalm:
		stability = StabilityHigh
	}

	return Profile{
		Trend:      trend,
		Volatility: volatility,
		Shock:      shock,
		Stability:  stability,
	}
}

// #endregion analyze

// #region helpers

// stddev computes the population standard deviation.
func stddev(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// #endregion helpers
