// Package decision holds the shared data model: the telemetry input record,
// the launch verdict, and the per-game history row. Every other package
// depends on these types and none of them adds behavior beyond validation.
package decision

import "time"

// #region verdict

// Verdict is the launch decision for a game build.
type Verdict string

const (
	VerdictGo      Verdict = "GO"
	VerdictIterate Verdict = "ITERATE"
	VerdictKill    Verdict = "KILL"
)

// #endregion verdict

// #region input

// Session is one attached sub-session of a telemetry record.
type Session struct {
	DurationSec float64 `json:"duration_sec"`
}

// Event is one raw gameplay event attached to a telemetry record.
type Event struct {
	Type string `json:"type"`
}

// Input is one gameplay telemetry record, the unit the pipeline decides on.
// Playtime and session durations are seconds. Sessions and Events are
// optional; the counters alone are enough to score a record.
type Input struct {
	GameID    string    `json:"game_id"`
	PlayerID  string    `json:"player_id"`
	SessionID string    `json:"session_id"`
	Playtime  float64   `json:"playtime"`
	Deaths    int       `json:"deaths"`
	Restarts  int       `json:"restarts"`
	EarlyQuit bool      `json:"early_quit"`
	Sessions  []Session `json:"sessions,omitempty"`
	Events    []Event   `json:"events,omitempty"`
}

// #endregion input

// #region history

// HistoryRecord is one prior scored decision for a game, as returned by the
// store in newest-first order.
type HistoryRecord struct {
	RiskScore float64   `json:"risk_score"`
	Decision  Verdict   `json:"decision"`
	CreatedAt time.Time `json:"created_at"`
}

// #endregion history
