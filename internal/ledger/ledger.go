// Package ledger constructs the immutable audit record for one pipeline
// invocation. Contract: once an Entry is built, no component alters any of
// its fields; persistence is append-only.
package ledger

import (
	"time"

	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/google/uuid"
)

// #region source

// Source identifies which authority produced the decision.
type Source string

const (
	SourceAI         Source = "AI"
	SourceHuman      Source = "HUMAN"
	SourceRuleEngine Source = "RULE_ENGINE"
)

// #endregion source

// #region entry

// InputSnapshot is the bounded subset of the input captured for audit.
// Missing fields default to 0/false.
type InputSnapshot struct {
	Playtime  float64 `json:"playtime"`
	Deaths    int     `json:"deaths"`
	Restarts  int     `json:"restarts"`
	EarlyQuit bool    `json:"early_quit"`
}

// Entry is one append-only audit record.
type Entry struct {
	EntryID     string           `json:"entry_id"`
	GameID      string           `json:"game_id"`
	PlayerID    string           `json:"player_id"`
	SessionID   string           `json:"session_id"`
	Decision    decision.Verdict `json:"decision"`
	Source      Source           `json:"source"`
	RiskScore   *float64         `json:"risk_score"` // nil when a rule override skipped scoring
	Confidence  float64          `json:"confidence"`
	Explanation string           `json:"explanation"`

	// Trend, Volatility, and Shock are nil when temporal analysis did not run.
	Trend      *string  `json:"trend,omitempty"`
	Volatility *float64 `json:"volatility,omitempty"`
	Shock      *bool    `json:"shock,omitempty"`

	Snapshot  InputSnapshot `json:"input_snapshot"`
	CreatedAt time.Time     `json:"created_at"`
}

// #endregion entry

// #region params

// Params carries everything needed to build an Entry.
type Params struct {
	Input       decision.Input
	Decision    decision.Verdict
	Source      Source
	RiskScore   *float64
	Confidence  float64
	Explanation string
	Trend       *string
	Volatility  *float64
	Shock       *bool
}

// #endregion params

// #region new

// New builds an Entry with a freshly generated globally-unique identifier
// and a UTC creation timestamp.
func New(p Params) Entry {
	return Entry{
		EntryID:     uuid.New().String(),
		GameID:      p.Input.GameID,
		PlayerID:    p.Input.PlayerID,
		SessionID:   p.Input.SessionID,
		Decision:    p.Decision,
		Source:      p.Source,
		RiskScore:   p.RiskScore,
		Confidence:  p.Confidence,
		Explanation: p.Explanation,
		Trend:       p.Trend,
		Volatility:  p.Volatility,
		Shock:       p.Shock,
		Snapshot: InputSnapshot{
			Playtime:  p.Input.Playtime,
			Deaths:    p.Input.Deaths,
			Restarts:  p.Input.Restarts,
			EarlyQuit: p.Input.EarlyQuit,
		},
		CreatedAt: time.Now().UTC(),
	}
}

// #endregion new
