package pipeline

// #region imports
import (
	"context"

	"github.com/danielpatrickdp/launchgate/internal/counterfactual"
	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/danielpatrickdp/launchgate/internal/explain"
	"github.com/danielpatrickdp/launchgate/internal/insight"
	"github.com/danielpatrickdp/launchgate/internal/ledger"
	"github.com/danielpatrickdp/launchgate/internal/recommend"
	"github.com/danielpatrickdp/launchgate/internal/rules"
	"github.com/danielpatrickdp/launchgate/internal/temporal"
)

// #endregion

// #region store-interface

// Store is the external data collaborator. Reads are plain queries; the two
// write paths are append-only.
type Store interface {
	ActiveRules(ctx context.Context) ([]rules.Definition, error)
	SignalWeights(ctx context.Context) (map[string]float64, error)
	History(ctx context.Context, gameID string, limit int) ([]decision.HistoryRecord, error)
	AppendLedger(ctx context.Context, entry ledger.Entry) error
	AppendHistory(ctx context.Context, gameID string, riskScore float64, verdict decision.Verdict) error
}

// #endregion store-interface

// #region sources

// Decision sources reported in the result.
const (
	SourceModel      = "MODEL"
	SourceRuleEngine = "RULE_ENGINE"
)

// Error codes for failed invocations.
const (
	ErrInvalidInput = "INVALID_INPUT"
	ErrLedgerWrite  = "LEDGER_WRITE_FAILED"
)

// #endregion sources

// #region result

// Result is the full outcome of one pipeline invocation. On a rule
// override, RiskScore is nil and the scoring stages are skipped; on a
// validation failure only OK, Error, and Details are populated.
type Result struct {
	OK      bool              `json:"ok"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`

	Decision        decision.Verdict `json:"decision,omitempty"`
	RiskScore       *float64         `json:"risk_score"`
	Confidence      float64          `json:"confidence"`
	ConfidenceLevel string           `json:"confidence_level,omitempty"`
	Source          string           `json:"source,omitempty"`
	PrimaryCategory string           `json:"primary_risk_category,omitempty"`

	Insights        insight.Summary            `json:"insights"`
	RuleMatch       *rules.Match               `json:"rule_match,omitempty"`
	Temporal        *temporal.Profile          `json:"temporal,omitempty"`
	Counterfactual  *counterfactual.Set        `json:"counterfactual,omitempty"`
	Explanation     *explain.Explanation       `json:"explanation,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations,omitempty"`
	Ledger          *ledger.Entry              `json:"ledger,omitempty"`
}

// #endregion result
