package signals

// #region level

// Level is the severity bucket for a classified signal.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// #endregion level

// #region config

// DeriverConfig holds the fixed classification thresholds.
type DeriverConfig struct {
	DeathsMedium   int     // deaths at or above this → MEDIUM
	DeathsHigh     int     // deaths at or above this → HIGH
	RestartsMedium int     // restarts at or above this → MEDIUM
	RestartsHigh   int     // restarts at or above this → HIGH
	PlaytimeLowSec float64 // playtime below this → HIGH (inverted scale)
	PlaytimeMidSec float64 // playtime below this → MEDIUM
}

// DefaultDeriverConfig returns the standard thresholds.
func DefaultDeriverConfig() DeriverConfig {
	return DeriverConfig{
		DeathsMedium:   3,
		DeathsHigh:     6,
		RestartsMedium: 2,
		RestartsHigh:   5,
		PlaytimeLowSec: 120,
		PlaytimeMidSec: 300,
	}
}

// #endregion config

// #region derived

// Derived is the full signal set computed for one input record.
// Rates are per-minute; Levels are the categorical view of the same raw
// counts. Metrics is the flat numeric map consumed by rule evaluation.
type Derived struct {
	DeathsPerMin          float64
	RestartsPerMin        float64
	EarlyExitFlag         int
	SessionDepth          int
	DeviationFromBaseline float64
	Levels                map[string]Level
	Metrics               map[string]float64
}

// #endregion derived
